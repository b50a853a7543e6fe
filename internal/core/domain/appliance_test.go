package domain

import (
	"math"
	"testing"
	"time"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAppliance_ComputeDerived_PerRecordRate(t *testing.T) {
	rate := 8.0
	a := &Appliance{
		Name:        "Fan",
		RatingKW:    0.05,
		HoursPerDay: 8,
		Quantity:    2,
		DaysPerWeek: 7,
		UnitRate:    &rate,
	}

	a.ComputeDerived(12.5)

	if !almostEqual(a.ConsumptionPerDay, 0.8) {
		t.Fatalf("consumption per day: got %v, want 0.8", a.ConsumptionPerDay)
	}
	if !almostEqual(a.ConsumptionPerWeek, 5.6) {
		t.Fatalf("consumption per week: got %v, want 5.6", a.ConsumptionPerWeek)
	}
	if !almostEqual(a.ConsumptionPerMonth, 5.6*WeeksPerMonth) {
		t.Fatalf("consumption per month: got %v, want %v", a.ConsumptionPerMonth, 5.6*WeeksPerMonth)
	}
	// The per-record rate must win over the default passed in.
	if !almostEqual(a.MonthlyCost, 5.6*WeeksPerMonth*8) {
		t.Fatalf("monthly cost: got %v, want %v", a.MonthlyCost, 5.6*WeeksPerMonth*8)
	}
}

func TestAppliance_ComputeDerived_DefaultRate(t *testing.T) {
	a := &Appliance{
		Name:        "Heater",
		RatingKW:    1.5,
		HoursPerDay: 4,
		Quantity:    1,
		DaysPerWeek: 5,
	}

	a.ComputeDerived(10)

	wantMonth := 1.5 * 4 * 1 * 5 * WeeksPerMonth
	if !almostEqual(a.ConsumptionPerMonth, wantMonth) {
		t.Fatalf("consumption per month: got %v, want %v", a.ConsumptionPerMonth, wantMonth)
	}
	if !almostEqual(a.MonthlyCost, wantMonth*10) {
		t.Fatalf("monthly cost: got %v, want %v", a.MonthlyCost, wantMonth*10)
	}
}

func TestAppliance_ComputeDerived_ZeroDayFrequency(t *testing.T) {
	a := &Appliance{Name: "Spare", RatingKW: 2, HoursPerDay: 3, Quantity: 1, DaysPerWeek: 0}

	a.ComputeDerived(10)

	if a.ConsumptionPerDay == 0 {
		t.Fatalf("consumption per day should reflect usage inputs, got 0")
	}
	if a.ConsumptionPerWeek != 0 || a.ConsumptionPerMonth != 0 || a.MonthlyCost != 0 {
		t.Fatalf("weekly and monthly figures must be zero when days_per_week is 0: %+v", a)
	}
}

func TestIdentity_OTPValidAt(t *testing.T) {
	code := "1234"
	expiry := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	id := &Identity{Email: "a@x.com", OTP: &code, OTPExpiresAt: &expiry}

	if !id.OTPValidAt("1234", expiry.Add(-time.Minute)) {
		t.Fatalf("code should be valid before expiry")
	}
	// The expiry instant itself is still valid; only strictly-after fails.
	if !id.OTPValidAt("1234", expiry) {
		t.Fatalf("code should be valid at the expiry instant")
	}
	if id.OTPValidAt("1234", expiry.Add(time.Nanosecond)) {
		t.Fatalf("code should be invalid after expiry")
	}
	if id.OTPValidAt("4321", expiry.Add(-time.Minute)) {
		t.Fatalf("mismatched code should be invalid")
	}

	cleared := &Identity{Email: "a@x.com"}
	if cleared.OTPValidAt("1234", expiry) {
		t.Fatalf("identity without pending code should never validate")
	}
}
