package utils

import (
	"strings"
	"testing"
)

func TestIsValidInviteURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		desc     string
	}{
		// Valid cases
		{"https://discord.com/api/oauth2/authorize?client_id=1&scope=bot", true, "discord.com with api segment"},
		{"https://discord.com/oauth2/authorize?client_id=1", true, "discord.com without api segment"},
		{"http://discordapp.com/oauth2/authorize?client_id=1", true, "legacy discordapp host over http"},

		// Invalid cases
		{"", false, "empty string"},
		{"https://discord.gg/abc", false, "server invite instead of oauth"},
		{"https://evil.com/discord.com/oauth2/authorize", false, "host not at start"},
		{"discord.com/oauth2/authorize", false, "missing scheme"},
	}

	for _, test := range tests {
		result := IsValidInviteURL(test.input)
		if result != test.expected {
			t.Errorf("IsValidInviteURL(%q) = %v, expected %v (%s)", test.input, result, test.expected, test.desc)
		}
	}
}

func TestIsValidSupportServer(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		desc     string
	}{
		{"abcDEF", true, "bare invite code"},
		{"https://discord.gg/abc-def", true, "discord.gg URL"},
		{"my.code", true, "code with dot"},
		{"", false, "empty string"},
		{"https://discord.com/invite/abc", false, "non discord.gg URL"},
		{"bad code", false, "contains space"},
	}

	for _, test := range tests {
		result := IsValidSupportServer(test.input)
		if result != test.expected {
			t.Errorf("IsValidSupportServer(%q) = %v, expected %v (%s)", test.input, result, test.expected, test.desc)
		}
	}
}

func TestIsValidPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		desc     string
	}{
		{"!", true, "single character"},
		{strings.Repeat("a", 16), true, "max length"},
		{"한글", true, "multibyte counted as characters"},
		{"", false, "empty"},
		{strings.Repeat("a", 17), false, "too long"},
	}

	for _, test := range tests {
		result := IsValidPrefix(test.input)
		if result != test.expected {
			t.Errorf("IsValidPrefix(%q) = %v, expected %v (%s)", test.input, result, test.expected, test.desc)
		}
	}
}

func TestPaginationPredicates(t *testing.T) {
	if !IsValidPage(1) || IsValidPage(0) || IsValidPage(-3) {
		t.Error("page must be >= 1")
	}

	for _, count := range []int{1, 16, 50} {
		if !IsValidCount(count) {
			t.Errorf("IsValidCount(%d) should be true", count)
		}
	}
	for _, count := range []int{0, -1, 51, 1000} {
		if IsValidCount(count) {
			t.Errorf("IsValidCount(%d) should be false", count)
		}
	}

	if !IsValidSortDirection("ascending") || !IsValidSortDirection("descending") {
		t.Error("ascending and descending must be accepted")
	}
	for _, direction := range []string{"", "asc", "DESCENDING", "up"} {
		if IsValidSortDirection(direction) {
			t.Errorf("IsValidSortDirection(%q) should be false", direction)
		}
	}
}

func TestFindDisallowed(t *testing.T) {
	allowed := []string{"approved", "safeAvatar"}

	if value, found := FindDisallowed([]string{"approved", "safeAvatar"}, allowed); found {
		t.Errorf("Expected no disallowed value, got %q", value)
	}

	value, found := FindDisallowed([]string{"approved", "nsfw", "other"}, allowed)
	if !found || value != "nsfw" {
		t.Errorf("Expected first disallowed value 'nsfw', got %q (found=%v)", value, found)
	}

	if _, found := FindDisallowed(nil, allowed); found {
		t.Error("nil list should contain no disallowed values")
	}
}

func TestJoinList(t *testing.T) {
	if got := JoinList([]string{"music", "moderation"}); got != "music,moderation" {
		t.Errorf("Expected 'music,moderation', got %q", got)
	}
	if got := JoinList(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
