package report

import (
	"strings"
	"testing"
	"time"

	"picalcd/internal/config"
	"picalcd/internal/verify"
)

func TestTableIncludesVerificationWhenPresent(t *testing.T) {
	s := Summary{
		RunID:     "abcd1234",
		Digits:    10,
		Threads:   4,
		Mode:      config.ModeStatic,
		Method:    config.MethodChudnovsky,
		Elapsed:   250 * time.Millisecond,
		TermCount: 2,
		Verified:  &verify.Result{AgreeingDigits: 10, Matched: true},
	}
	table := s.Table()
	if !strings.Contains(table, "verified") {
		t.Fatalf("table missing verified row:\n%s", table)
	}
	if !strings.Contains(table, "digits") || !strings.Contains(table, "10") {
		t.Fatalf("table missing digits row:\n%s", table)
	}
}

func TestTableOmitsVerificationWhenAbsent(t *testing.T) {
	s := Summary{
		RunID:     "abcd1234",
		Digits:    10,
		Threads:   1,
		Mode:      config.ModeStatic,
		Method:    config.MethodChudnovsky,
		Elapsed:   time.Millisecond,
		TermCount: 2,
	}
	table := s.Table()
	if strings.Contains(table, "verified") {
		t.Fatalf("table should omit verified row:\n%s", table)
	}
}
