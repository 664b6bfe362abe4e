package validator_test

import (
	"testing"

	"saheli/pkg/validator"
)

type coordInput struct {
	Lat float64 `validate:"lat"`
	Lng float64 `validate:"lng"`
}

type phoneInput struct {
	Phone string `validate:"phone_cc"`
}

func TestCoordinateBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      coordInput
		wantErr bool
	}{
		{"valid", coordInput{Lat: 40.7128, Lng: -74.006}, false},
		{"edges", coordInput{Lat: -90, Lng: 180}, false},
		{"lat too high", coordInput{Lat: 90.01, Lng: 0}, true},
		{"lng too low", coordInput{Lat: 0, Lng: -180.5}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validator.ValidateStruct(&tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPhoneCountryCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone   string
		wantErr bool
	}{
		{"+919876543210", false},
		{"+15550001111", false},
		{"9876543210", true},
		{"+91-9876543210", true},
		{"+123", true},
		{"+12345678901234567", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.phone, func(t *testing.T) {
			t.Parallel()
			err := validator.ValidateStruct(&phoneInput{Phone: tc.phone})
			if (err != nil) != tc.wantErr {
				t.Fatalf("phone %q: wantErr=%v got %v", tc.phone, tc.wantErr, err)
			}
		})
	}
}
