package data

import "testing"

func TestFindChampion(t *testing.T) {
	champions := []Champion{
		{ID: 266, Name: "Aatrox"},
		{ID: 103, Name: "Ahri"},
	}

	found := FindChampion(champions, 103)
	if found == nil {
		t.Fatal("Expected champion to be found")
	}
	if found.Name != "Ahri" {
		t.Errorf("Expected Name 'Ahri', got '%s'", found.Name)
	}

	if FindChampion(champions, 1) != nil {
		t.Error("Expected nil for unknown id")
	}

	if FindChampion(nil, 266) != nil {
		t.Error("Expected nil for empty list")
	}
}

func TestStatsRows(t *testing.T) {
	stats := Stats{HP: 650, AttackDamage: 60.5, Armor: 38, SpellBlock: 32, MoveSpeed: 345, AttackRange: 175}
	rows := stats.Rows()

	if len(rows) != 6 {
		t.Fatalf("Expected 6 rows, got %d", len(rows))
	}
	if rows[0].Label != "HP" || rows[0].Value != "650" {
		t.Errorf("Unexpected first row %+v", rows[0])
	}
	if rows[1].Value != "60.5" {
		t.Errorf("Expected '60.5', got '%s'", rows[1].Value)
	}
	if rows[3].Label != "Magic resist" || rows[3].Value != "32" {
		t.Errorf("Unexpected magic resist row %+v", rows[3])
	}
}
