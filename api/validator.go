package api

import (
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/errors"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/utils"
)

// 호출 인자 검증. 네트워크 요청 전에 실패합니다

func validateID(field, value string) error {
	if !utils.IsNonEmpty(value) {
		return errors.NewValidationErrorf(field, "Expected %s.length > 0, got 0", field)
	}
	return nil
}

func validateToken(token string) error {
	return validateID("token", token)
}

func validateList(opts ListOptions) error {
	if !utils.IsValidPage(opts.Page) {
		return errors.NewValidationErrorf("page", "Expected page >= %d, got %d", constants.MinPage, opts.Page)
	}
	if !utils.IsValidCount(opts.Count) {
		if opts.Count < constants.MinCount {
			return errors.NewValidationErrorf("count", "Expected count >= %d, got %d", constants.MinCount, opts.Count)
		}
		return errors.NewValidationErrorf("count", "Expected count <= %d, got %d", constants.MaxCount, opts.Count)
	}
	if !utils.IsValidSortDirection(string(opts.SortDirection)) {
		return errors.NewValidationErrorf("sortDirection",
			"Expected 'sortDirection' to be either '%s' or '%s', got %s",
			models.Ascending, models.Descending, opts.SortDirection)
	}
	return nil
}

func validateSearch(opts SearchOptions, allowedFilters []string) error {
	if err := validateList(opts.ListOptions); err != nil {
		return err
	}
	if bad, found := utils.FindDisallowed(opts.Filters, allowedFilters); found {
		return errors.NewValidationErrorf("filters",
			"Expected 'filters' to only contain allowed values, found %s", bad)
	}
	return nil
}

func validateTagType(tagType models.TagType) error {
	if !utils.Contains(constants.AllowedTagTypes, string(tagType)) {
		return errors.NewValidationErrorf("type",
			"Expected 'type' to be one of the allowed tag types, got '%s'", tagType)
	}
	return nil
}

func validateTimeRange(r TimeRange, now time.Time) error {
	if r.From < 0 {
		return errors.NewValidationErrorf("from", "Expected from >= 0, got %d", r.From)
	}
	if r.To < 0 {
		return errors.NewValidationErrorf("to", "Expected to >= 0, got %d", r.To)
	}
	if r.From >= r.To {
		return errors.NewValidationErrorf("from", "Expected from < to, got %d < %d", r.From, r.To)
	}
	if nowMillis := utils.ToMillis(now); r.To > nowMillis {
		return errors.NewValidationErrorf("to", "Expected to <= %d, got %d", nowMillis, r.To)
	}
	return nil
}

func emptyFormError() error {
	return errors.NewValidationError("form", "Expected 'form' to have at least one property, got none")
}

func validateShortDescription(v *string) error {
	if v != nil && !utils.IsNonEmpty(*v) {
		return errors.NewValidationError("form.shortDescription", "Expected form.shortDescription.length > 0, got 0")
	}
	return nil
}

func validateNullableString(field string, v models.Optional[string]) error {
	if s, ok := v.Value(); ok && !utils.IsNonEmpty(s) {
		return errors.NewValidationErrorf(field, "Expected %s.length > 0, got 0", field)
	}
	return nil
}

func validateBotUpdate(form models.BotUpdate) error {
	if form.IsEmpty() {
		return emptyFormError()
	}
	if err := validateShortDescription(form.ShortDescription); err != nil {
		return err
	}
	if form.InviteURL != nil {
		if !utils.IsNonEmpty(*form.InviteURL) {
			return errors.NewValidationError("form.inviteURL", "Expected form.inviteURL.length > 0, got 0")
		}
		if !utils.IsValidInviteURL(*form.InviteURL) {
			return errors.NewValidationError("form.inviteURL", "'form.inviteURL' did not match the Discord invite RegEx")
		}
	}
	if form.Prefix != nil && !utils.IsValidPrefix(*form.Prefix) {
		return errors.NewValidationErrorf("form.prefix",
			"Expected %d <= form.prefix.length <= %d, got %d",
			constants.MinPrefixLength, constants.MaxPrefixLength, utils.CharacterCount(*form.Prefix))
	}
	if server, ok := form.SupportServer.Value(); ok {
		length := utils.CharacterCount(server)
		if length == 0 || length > constants.MaxSupportServerLength {
			return errors.NewValidationErrorf("form.supportServer",
				"Expected 0 < form.supportServer.length <= %d, got %d", constants.MaxSupportServerLength, length)
		}
		if !utils.IsValidSupportServer(server) {
			return errors.NewValidationError("form.supportServer",
				"'form.supportServer' did not match the Discord server invite RegEx")
		}
	}
	if err := validateNullableString("form.vanity", form.Vanity); err != nil {
		return err
	}
	if err := validateNullableString("form.websiteURL", form.WebsiteURL); err != nil {
		return err
	}
	if count, ok := form.ServerCount.Value(); ok && count < 0 {
		return errors.NewValidationErrorf("form.serverCount", "Expected form.serverCount >= 0, got %d", count)
	}
	return nil
}

func validateServerUpdate(form models.ServerUpdate) error {
	if form.IsEmpty() {
		return emptyFormError()
	}
	if err := validateShortDescription(form.ShortDescription); err != nil {
		return err
	}
	if form.InviteCode != nil && !utils.IsNonEmpty(*form.InviteCode) {
		return errors.NewValidationError("form.inviteCode", "Expected form.inviteCode.length > 0, got 0")
	}
	if err := validateNullableString("form.vanity", form.Vanity); err != nil {
		return err
	}
	return validateNullableString("form.websiteURL", form.WebsiteURL)
}
