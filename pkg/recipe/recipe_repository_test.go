package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Recipe-Catalog-Service/entities"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGetRecipesOrdersByViewsThenCookingTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" ORDER BY views desc, cooking_time asc, id asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views", "cooking_time", "description"}).
			AddRow(2, "Borscht", 10, 40, "Beet soup").
			AddRow(1, "Soup", 10, 60, "Hot soup").
			AddRow(3, "Toast", 0, 5, "Plain toast"))

	recipes, err := repo.GetRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	for i := 1; i < len(recipes); i++ {
		prev, cur := recipes[i-1], recipes[i]
		assert.GreaterOrEqual(t, prev.Views, cur.Views)
		if prev.Views == cur.Views {
			assert.LessOrEqual(t, prev.CookingTime, cur.CookingTime)
		}
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views", "cooking_time", "description"}))

	recipe, err := repo.GetRecipeByID(context.Background(), 99)
	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipeByIDPreloadsIngredients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views", "cooking_time", "description"}).
			AddRow(1, "Soup", 0, 20, "Hot soup"))
	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE "ingredients"\."recipe_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cooking_time", "description", "list_of_ingredients", "recipe_id"}).
			AddRow(7, "Broth", 20, "Hot soup", "2l water, 1 cube", 1))

	recipe, err := repo.GetRecipeByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, uint(1), recipe.Ingredients[0].RecipeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecipePopulatesGeneratedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "recipes"`).
		WithArgs("Soup", 20, "Hot soup").
		WillReturnRows(sqlmock.NewRows([]string{"views", "id"}).AddRow(0, 1))
	mock.ExpectCommit()

	recipe := &entities.Recipe{Name: "Soup", CookingTime: 20, Description: "Hot soup"}
	require.NoError(t, repo.CreateRecipe(context.Background(), recipe))

	assert.Equal(t, uint(1), recipe.ID)
	assert.Equal(t, 0, recipe.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecipeCascadesToIngredients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views", "cooking_time", "description"}).
			AddRow(1, "Soup", 0, 20, "Hot soup"))
	mock.ExpectExec(`DELETE FROM "ingredients" WHERE "ingredients"\."recipe_id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "recipes" WHERE "recipes"\."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRecipe(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecipeNotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views", "cooking_time", "description"}))
	mock.ExpectRollback()

	err := repo.DeleteRecipe(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
