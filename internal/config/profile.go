package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// CurrentProfileVersion is bumped when the profile layout changes.
const CurrentProfileVersion = 1

// Profile is a persisted threshold set tied to the machine it was measured on.
type Profile struct {
	ProfileVersion int        `json:"profile_version"`
	GOARCH         string     `json:"goarch"`
	NumCPU         int        `json:"num_cpu"`
	WordSize       int        `json:"word_size"`
	MeasuredAt     time.Time  `json:"measured_at"`
	Thresholds     Thresholds `json:"thresholds"`
}

// NewProfile returns a profile for the current machine holding t.
func NewProfile(t Thresholds) *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		GOARCH:         runtime.GOARCH,
		NumCPU:         runtime.NumCPU(),
		WordSize:       32 << (^uint(0) >> 63),
		MeasuredAt:     time.Now(),
		Thresholds:     t,
	}
}

// Matches reports whether the profile was produced for this machine and
// layout version.
func (p *Profile) Matches() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// Save writes the profile as indented JSON, creating parent directories.
func (p *Profile) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "creating profile directory")
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return apperrors.WrapError(err, "encoding profile")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WrapError(err, "writing profile %s", path)
	}
	return nil
}

// LoadProfile reads a profile from path. A malformed file yields an
// apperrors.ParseError.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading profile %s", path)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.ParseError{Input: path, Reason: err.Error()}
	}
	return &p, nil
}

func (p *Profile) String() string {
	return fmt.Sprintf("profile v%d (%s, %d-bit, measured %s): %s",
		p.ProfileVersion, p.GOARCH, p.WordSize,
		p.MeasuredAt.Format(time.RFC3339), p.Thresholds)
}
