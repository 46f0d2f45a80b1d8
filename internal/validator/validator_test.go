package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type sample struct {
	Amount decimal.Decimal  `binding:"required,gt=0"`
	Target *decimal.Decimal `binding:"omitempty,gte=0"`
	Type   string           `binding:"omitempty,transaction_type"`
	Color  string           `binding:"omitempty,hex_color"`
	Period string           `binding:"omitempty,summary_period"`
}

func init() {
	Register()
}

func TestRegister_Decimal(t *testing.T) {
	neg := decimal.RequireFromString("-1")
	zero := decimal.Zero

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"positive_amount", sample{Amount: decimal.RequireFromString("0.01")}, false},
		{"zero_amount", sample{Amount: decimal.Zero}, true},
		{"negative_amount", sample{Amount: decimal.RequireFromString("-5")}, true},
		{"zero_pointer_allowed", sample{Amount: decimal.NewFromInt(1), Target: &zero}, false},
		{"negative_pointer", sample{Amount: decimal.NewFromInt(1), Target: &neg}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegister_CustomTags(t *testing.T) {
	one := decimal.NewFromInt(1)

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"income", sample{Amount: one, Type: "income"}, false},
		{"expense", sample{Amount: one, Type: "expense"}, false},
		{"uppercase_type", sample{Amount: one, Type: "INCOME"}, true},
		{"unknown_type", sample{Amount: one, Type: "transfer"}, true},
		{"short_hex", sample{Amount: one, Color: "#abc"}, false},
		{"long_hex", sample{Amount: one, Color: "#3B82F6"}, false},
		{"bad_hex", sample{Amount: one, Color: "blue"}, true},
		{"week", sample{Amount: one, Period: "week"}, false},
		{"custom", sample{Amount: one, Period: "custom"}, false},
		{"bad_period", sample{Amount: one, Period: "daily"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

type named struct {
	Name    string `json:"name" binding:"required"`
	PerPage int    `form:"per_page" binding:"omitempty,max=100"`
}

func TestRegister_FieldNames(t *testing.T) {
	err := binding.Validator.ValidateStruct(named{PerPage: 500})
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	got := map[string]string{}
	for _, fe := range verrs {
		got[fe.Field()] = fe.Tag()
	}
	if got["name"] != "required" {
		t.Errorf("expected name to fail required, got %v", got)
	}
	if got["per_page"] != "max" {
		t.Errorf("expected per_page to fail max, got %v", got)
	}
}
