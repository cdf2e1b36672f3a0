package service

import (
	"context"
	"fmt"
	"unicode"
)

const (
	// MinPrefixLength and MaxPrefixLength bound stored prefixes. The
	// bound also caps the case-permutation fan-out in Resolve.
	MinPrefixLength = 1
	MaxPrefixLength = 20
)

// prefixService implements the PrefixService interface
type prefixService struct {
	guildSettingsRepo GuildSettingsRepository
	defaultPrefix     string
}

// NewPrefixService creates a new prefix service. defaultPrefix is stored
// for a guild on first lookup.
func NewPrefixService(guildSettingsRepo GuildSettingsRepository, defaultPrefix string) PrefixService {
	return &prefixService{
		guildSettingsRepo: guildSettingsRepo,
		defaultPrefix:     defaultPrefix,
	}
}

// Get returns the effective prefix for a guild, persisting the default on
// first reference
func (s *prefixService) Get(ctx context.Context, guildID int64) (string, error) {
	prefix, err := s.guildSettingsRepo.GetOrCreatePrefix(ctx, guildID, s.defaultPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to get or create prefix for guild %d: %w", guildID, err)
	}
	return prefix, nil
}

// Set validates and stores a new prefix for a guild
func (s *prefixService) Set(ctx context.Context, guildID int64, prefix string) error {
	if err := validatePrefix(prefix); err != nil {
		return err
	}
	if err := s.guildSettingsRepo.SetPrefix(ctx, guildID, prefix); err != nil {
		return fmt.Errorf("failed to set prefix for guild %d: %w", guildID, err)
	}
	return nil
}

// Resolve expands the stored prefix into every case-permutation of its
// characters so that command matching is case-insensitive. Recomputed per
// lookup; prefixes are short so the fan-out stays small.
func (s *prefixService) Resolve(ctx context.Context, guildID int64) ([]string, error) {
	prefix, err := s.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return CasePermutations(prefix), nil
}

// CasePermutations returns every case form of s. Characters without a
// distinct upper/lower form contribute a single variant.
func CasePermutations(s string) []string {
	variants := []string{""}
	for _, r := range s {
		lower, upper := unicode.ToLower(r), unicode.ToUpper(r)
		next := make([]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, v+string(lower))
			if upper != lower {
				next = append(next, v+string(upper))
			}
		}
		variants = next
	}
	return variants
}

// validatePrefix bounds a prefix to 1-20 printable characters
func validatePrefix(prefix string) error {
	runes := []rune(prefix)
	if len(runes) < MinPrefixLength || len(runes) > MaxPrefixLength {
		return fmt.Errorf("prefix must be %d-%d characters: %w", MinPrefixLength, MaxPrefixLength, ErrInvalidField)
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("prefix contains a non-printable character: %w", ErrInvalidField)
		}
	}
	return nil
}
