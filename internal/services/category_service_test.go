package services

import (
	"context"
	"testing"

	"budgetapi/internal/models"
	"budgetapi/internal/testutil"
)

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCategoryService(db)
	salary := testutil.CreateTestCategoryWithName(t, db, "Salary", models.CategoryTypeIncome)
	food := testutil.CreateTestCategoryWithName(t, db, "Food", models.CategoryTypeExpense)
	rent := testutil.CreateTestCategoryWithName(t, db, "Rent", models.CategoryTypeExpense)

	t.Run("all_ordered_by_id", func(t *testing.T) {
		categories, err := svc.ListCategories(context.Background(), nil)
		testutil.AssertNoError(t, err)

		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		for i, want := range []uint{salary.ID, food.ID, rent.ID} {
			if categories[i].ID != want {
				t.Errorf("position %d: expected id %d, got %d", i, want, categories[i].ID)
			}
		}
	})

	t.Run("filtered_by_type", func(t *testing.T) {
		expense := models.CategoryTypeExpense
		categories, err := svc.ListCategories(context.Background(), &expense)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 expense categories, got %d", len(categories))
		}
		for _, c := range categories {
			if c.Type != models.CategoryTypeExpense {
				t.Errorf("expected only expense categories, got %s", c.Type)
			}
		}
	})

	t.Run("unknown_type_matches_nothing", func(t *testing.T) {
		other := models.CategoryType("transfer")
		categories, err := svc.ListCategories(context.Background(), &other)
		testutil.AssertNoError(t, err)

		if categories == nil || len(categories) != 0 {
			t.Errorf("expected an empty non-nil slice, got %v", categories)
		}
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory(context.Background(), "Travel", "Plane", "bg-sky-500", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if n := testutil.CountRows(t, db, &models.Category{}); n != 1 {
			t.Errorf("expected 1 stored category, got %d", n)
		}
	})

	t.Run("returns_stored_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory(context.Background(), "Bonus", "Gift", "bg-lime-500", models.CategoryTypeIncome)
		testutil.AssertNoError(t, err)

		var stored models.Category
		if err := db.First(&stored, category.ID).Error; err != nil {
			t.Fatalf("failed to reload category: %v", err)
		}
		if !category.CreatedAt.Equal(stored.CreatedAt) {
			t.Errorf("expected created_at %v as stored, got %v", stored.CreatedAt, category.CreatedAt)
		}
		if category.Name != stored.Name || category.Icon != stored.Icon || category.Color != stored.Color || category.Type != stored.Type {
			t.Errorf("expected %+v, got %+v", stored, category)
		}
	})

	tests := []struct {
		name                 string
		catName, icon, color string
		categoryType         models.CategoryType
	}{
		{"missing_name", "", "i", "c", models.CategoryTypeIncome},
		{"missing_icon", "n", "", "c", models.CategoryTypeIncome},
		{"missing_color", "n", "i", "", models.CategoryTypeIncome},
		{"missing_type", "n", "i", "c", ""},
		{"invalid_type", "n", "i", "c", "transfer"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			svc := NewCategoryService(db)

			_, err := svc.CreateCategory(context.Background(), tc.catName, tc.icon, tc.color, tc.categoryType)
			testutil.AssertAppError(t, err, "INVALID_INPUT")

			if n := testutil.CountRows(t, db, &models.Category{}); n != 0 {
				t.Errorf("expected nothing stored, got %d rows", n)
			}
		})
	}
}
