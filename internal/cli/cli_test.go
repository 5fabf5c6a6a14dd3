package cli

import (
	"errors"
	"testing"
	"unicode/utf8"

	"ppalog/internal/core/domain"
	"ppalog/test/mocks"
)

func TestActionHints(t *testing.T) {
	cases := map[domain.Status]string{
		domain.StatusDraft:     "edit,delete",
		domain.StatusSubmitted: "edit,delete",
		domain.StatusRejected:  "edit,delete",
		domain.StatusApproved:  "-",
	}
	for status, want := range cases {
		if got := actionHints(status); got != want {
			t.Errorf("actionHints(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestParseDateFlag(t *testing.T) {
	if _, err := parseDateFlag("2026-03-14"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"14/03/2026", "2026-3-14", "yesterday", ""} {
		if _, err := parseDateFlag(bad); err == nil {
			t.Errorf("parseDateFlag(%q) should fail", bad)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long description indeed", 10); len([]rune(got)) != 10 {
		t.Errorf("truncate length = %d (%q)", len([]rune(got)), got)
	}

	// Multi-byte runes at the cut point must not be split.
	got := truncate("Visité l'hôpital général de Lagos aujourd'hui", 10)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if want := "Visité l'…"; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
}

func TestFail_NotifiesWithUserMessage(t *testing.T) {
	notifier := mocks.NewNotifierMock()
	app := &App{Notifier: notifier}

	err := &domain.RequestError{StatusCode: 400, Fields: map[string][]string{"hours": {"must be at most 24"}}}
	got := fail(app, "Error", err, "Something went wrong.")
	if !errors.Is(got, err) {
		t.Errorf("fail should return the original error, got %v", got)
	}

	errs := notifier.Errors
	if len(errs) != 1 {
		t.Fatalf("got %d error notifications, want 1", len(errs))
	}
	if errs[0].Title != "Error" {
		t.Errorf("title = %q", errs[0].Title)
	}
	if errs[0].Description != "hours: must be at most 24" {
		t.Errorf("description = %q", errs[0].Description)
	}
}

func TestFail_FallsBackForBareFailures(t *testing.T) {
	notifier := mocks.NewNotifierMock()
	app := &App{Notifier: notifier}

	fail(app, "Error", &domain.RequestError{StatusCode: 500}, "Please try again later.")

	if errs := notifier.Errors; len(errs) != 1 || errs[0].Description != "Please try again later." {
		t.Errorf("notifications = %+v", errs)
	}
}

func TestRoleLabel(t *testing.T) {
	if got := roleLabel(domain.RoleCorpsMember); got != "corps member" {
		t.Errorf("roleLabel = %q", got)
	}
	if got := roleLabel(domain.RoleSupervisor); got != "supervisor" {
		t.Errorf("roleLabel = %q", got)
	}
}
