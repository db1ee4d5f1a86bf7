// core/calc/capacity_test.go
package calc

import (
	"errors"
	"testing"
)

func TestDerailerCapacity(t *testing.T) {
	got, err := DerailerCapacity([]int{26, 36}, []int{12, 18, 32})
	if err != nil {
		t.Fatalf("DerailerCapacity: %v", err)
	}
	if got != 30 {
		t.Errorf("capacity = %d, want 30", got)
	}
}

func TestDerailerCapacitySingleCog(t *testing.T) {
	got, err := DerailerCapacity([]int{42}, []int{11, 36})
	if err != nil {
		t.Fatalf("DerailerCapacity: %v", err)
	}
	if got != 25 {
		t.Errorf("capacity = %d, want 25 (single front cog contributes 0)", got)
	}
}

func TestDerailerCapacityUnsortedInput(t *testing.T) {
	got, err := DerailerCapacity([]int{36, 26}, []int{32, 12, 18})
	if err != nil {
		t.Fatalf("DerailerCapacity: %v", err)
	}
	if got != 30 {
		t.Errorf("capacity = %d, want 30 regardless of input order", got)
	}
}

func TestDerailerCapacityEmptyList(t *testing.T) {
	if _, err := DerailerCapacity(nil, []int{12}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty front_cogs, got %v", err)
	}
}
