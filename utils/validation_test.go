package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	valid := []string{"Abcdef12", "Str0ngPassword", "xY345678"}
	for _, password := range valid {
		if !ValidatePassword(password) {
			t.Errorf("expected %q to be a valid password", password)
		}
	}

	invalid := []string{
		"",
		"Ab1",
		"Abcdef1",
		"abcdefg1",
		"ABCDEFG1",
		"Abcdefgh",
		"12345678",
	}
	for _, password := range invalid {
		if ValidatePassword(password) {
			t.Errorf("expected %q to be rejected", password)
		}
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"Ana", "Jean-Pierre", "Mary Jane"}
	for _, name := range valid {
		if !ValidateName(name) {
			t.Errorf("expected %q to be a valid name", name)
		}
	}

	invalid := []string{"", "A", "R2D2", "ana@x.com"}
	for _, name := range invalid {
		if ValidateName(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"22345678", "(070) 123-4567", "070 123 456"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be a valid phone", phone)
		}
	}

	invalid := []string{"", "123", "+22 345 678", "phone123456", "12a34567"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}

func TestValidateDate(t *testing.T) {
	valid := []string{"2026-09-01", "2000-02-29"}
	for _, date := range valid {
		if !ValidateDate(date) {
			t.Errorf("expected %q to be a valid date", date)
		}
	}

	invalid := []string{"", "01-09-2026", "2026/09/01", "2026-13-01", "2026-02-30", "tomorrow"}
	for _, date := range invalid {
		if ValidateDate(date) {
			t.Errorf("expected %q to be rejected", date)
		}
	}
}
