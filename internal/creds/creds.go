package creds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jasonwu001t/taicfg/config"
)

// Credentials is implemented by every provider credential struct.
type Credentials interface {
	Validate() error
}

// MissingKeyError reports a mandatory setting absent from both the
// environment and the settings file.
type MissingKeyError struct {
	Section string
	Key     string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing setting %s.%s (export %s or add it to the settings file)",
		e.Section, e.Key, config.EnvName(e.Section, e.Key))
}

// sectionReader accumulates lookup errors for one settings section so a
// loader can report every missing key at once instead of the first only.
type sectionReader struct {
	resolver *config.Resolver
	section  string
	errs     []error
}

func newSectionReader(r *config.Resolver, section string) *sectionReader {
	return &sectionReader{resolver: r, section: section}
}

func (s *sectionReader) required(key string) string {
	val, ok := s.resolver.Get(s.section, key)
	if !ok {
		s.errs = append(s.errs, &MissingKeyError{Section: s.section, Key: key})
	}
	return val
}

func (s *sectionReader) optional(key, fallback string) string {
	return s.resolver.GetDefault(s.section, key, fallback)
}

func (s *sectionReader) intOptional(key string, fallback int) int {
	raw, ok := s.resolver.Get(s.section, key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("setting %s.%s: invalid integer %q", s.section, key, raw))
		return fallback
	}
	return val
}

func (s *sectionReader) err() error {
	return errors.Join(s.errs...)
}
