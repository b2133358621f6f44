package models

import (
	"encoding/json"
	"testing"
)

func TestBotUpdateFields(t *testing.T) {
	update := BotUpdate{
		Prefix:        String("!"),
		SupportServer: Null[string](),
		ServerCount:   Some(250),
		Tags:          []string{},
	}

	fields := update.Fields()
	if len(fields) != 4 {
		t.Fatalf("Expected 4 fields, got %d: %v", len(fields), fields)
	}
	if v, ok := fields["supportServer"]; !ok || v != nil {
		t.Errorf("Expected explicit null supportServer, got %v", v)
	}
	if fields["serverCount"] != 250 {
		t.Errorf("Expected serverCount 250, got %v", fields["serverCount"])
	}
	if _, ok := fields["vanity"]; ok {
		t.Error("unset vanity should be omitted")
	}

	body, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"prefix":"!","serverCount":250,"supportServer":null,"tags":[]}`
	if string(body) != expected {
		t.Errorf("Expected %s, got %s", expected, body)
	}
}

func TestUpdateIsEmpty(t *testing.T) {
	if !(BotUpdate{}).IsEmpty() {
		t.Error("zero BotUpdate should be empty")
	}
	if !(ServerUpdate{}).IsEmpty() {
		t.Error("zero ServerUpdate should be empty")
	}
	if (ServerUpdate{Active: Bool(false)}).IsEmpty() {
		t.Error("ServerUpdate with active=false is not empty")
	}
}

func TestOptional(t *testing.T) {
	var unset Optional[string]
	if unset.IsSet() || unset.IsNull() {
		t.Error("zero Optional should be unset")
	}

	null := Null[string]()
	if !null.IsSet() || !null.IsNull() {
		t.Error("Null should be set and null")
	}
	if _, ok := null.Value(); ok {
		t.Error("Null should not have a value")
	}

	some := Some("vanity")
	if v, ok := some.Value(); !ok || v != "vanity" {
		t.Errorf("Expected vanity, got %q", v)
	}
}

func TestPaginatedResponseValid(t *testing.T) {
	tests := []struct {
		resp PaginatedResponse[int]
		want bool
		desc string
	}{
		{PaginatedResponse[int]{Page: 1, CountPerPage: 2, PageCount: 3, Data: []int{1, 2}}, true, "full first page"},
		{PaginatedResponse[int]{Page: 3, CountPerPage: 1, PageCount: 3, Data: []int{1}}, true, "last page"},
		{PaginatedResponse[int]{Page: 0, CountPerPage: 1, PageCount: 3, Data: []int{1}}, false, "page zero"},
		{PaginatedResponse[int]{Page: 4, CountPerPage: 1, PageCount: 3}, false, "page past end"},
		{PaginatedResponse[int]{Page: 1, CountPerPage: 1, PageCount: 1, Data: []int{1, 2}}, false, "more data than countPerPage"},
	}

	for _, test := range tests {
		if got := test.resp.Valid(); got != test.want {
			t.Errorf("%s: expected %v, got %v", test.desc, test.want, got)
		}
	}
}

func TestAuditLogTypeScope(t *testing.T) {
	tests := []struct {
		typ   AuditLogType
		scope AuditScope
		known bool
	}{
		{AuditBotApprovedManual, AuditScopeBot, true},
		{AuditServerWebhookDeleted, AuditScopeServer, true},
		{AuditUserEdited, AuditScopeUser, true},
		{AuditLogType("botExploded"), AuditScopeUnknown, false},
	}

	for _, test := range tests {
		if test.typ.IsKnown() != test.known {
			t.Errorf("%s: expected known=%v", test.typ, test.known)
		}
		if test.typ.Scope() != test.scope {
			t.Errorf("%s: expected scope %s, got %s", test.typ, test.scope, test.typ.Scope())
		}
	}
}

func TestReviewTarget(t *testing.T) {
	if (Review{Bot: &Bot{}}).Target() != ReviewTargetBot {
		t.Error("review with bot should target bot")
	}
	if (Review{Server: &Server{}}).Target() != ReviewTargetServer {
		t.Error("review with server should target server")
	}
	if (Review{}).Target() != ReviewTargetUnknown {
		t.Error("review without target should be unknown")
	}
}

func TestBotJSONRoundTrip(t *testing.T) {
	raw := `{"id":"307994108792799244","username":"GuessThatNumber","discriminator":"6542","avatar":null,` +
		`"serverCount":250,"vanity":null,"owner":{"id":"1","username":"owner","discriminator":"0001"},` +
		`"secondaryOwners":[{"id":"2","username":"second","discriminator":"0002"}],"reviews":{"count":3,"averageRating":4.5}}`

	var bot Bot
	if err := json.Unmarshal([]byte(raw), &bot); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if bot.Avatar != nil || bot.Vanity != nil {
		t.Error("null fields should stay nil")
	}
	if bot.ServerCount == nil || *bot.ServerCount != 250 {
		t.Errorf("Expected serverCount 250, got %v", bot.ServerCount)
	}
	if bot.Tag() != "GuessThatNumber#6542" {
		t.Errorf("Expected GuessThatNumber#6542, got %s", bot.Tag())
	}
	if owners := bot.Owners(); len(owners) != 2 || owners[1].ID != "2" {
		t.Errorf("Expected owner then secondary owner, got %v", owners)
	}

	again, err := json.Marshal(bot)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded Bot
	if err := json.Unmarshal(again, &decoded); err != nil {
		t.Fatalf("second Unmarshal failed: %v", err)
	}
	if decoded.ID != bot.ID || *decoded.ServerCount != 250 || decoded.Reviews.AverageRating != 4.5 {
		t.Errorf("round trip changed values: %+v", decoded)
	}
}

func TestSiteURLs(t *testing.T) {
	bot := Bot{ID: "123"}
	if bot.URL() != "https://discordlist.space/bot/123" {
		t.Errorf("Expected bot URL 'https://discordlist.space/bot/123', got '%s'", bot.URL())
	}

	server := Server{ID: "456"}
	if server.URL() != "https://discordlist.space/server/456" {
		t.Errorf("Expected server URL 'https://discordlist.space/server/456', got '%s'", server.URL())
	}
}
