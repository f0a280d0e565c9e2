package session

import (
	"reflect"
	"testing"
)

func TestCartAdd(t *testing.T) {
	cart := NewCart()

	cart.Add("1")
	if !cart.Contains("1") {
		t.Error("id missing after Add")
	}
	if cart.Len() != 1 {
		t.Errorf("Len = %d, want 1", cart.Len())
	}
}

func TestCartAddIsIdempotent(t *testing.T) {
	cart := NewCart()

	cart.Add("1")
	cart.Add("1")

	if cart.Len() != 1 {
		t.Errorf("Len = %d after double add, want 1", cart.Len())
	}
	if !reflect.DeepEqual(cart.IDs(), []string{"1"}) {
		t.Errorf("IDs = %v", cart.IDs())
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := NewCart()

	cart.Add("3")
	cart.Add("1")
	cart.Add("2")
	cart.Add("1")

	if !reflect.DeepEqual(cart.IDs(), []string{"3", "1", "2"}) {
		t.Errorf("IDs = %v, want [3 1 2]", cart.IDs())
	}
}

func TestCartContains(t *testing.T) {
	cart := NewCart()
	cart.Add("1")

	if cart.Contains("2") {
		t.Error("Contains reported an id that was never added")
	}
}
