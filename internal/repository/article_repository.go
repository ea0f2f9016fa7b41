package repository

import (
	"database/sql"
	"fmt"
	"newsdigest/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM news
	`).Scan(&total)
	return total, err
}

func (r *ArticleRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM news`)
	return err
}

func (r *ArticleRepository) Save(article *model.Article) error {
	return r.db.QueryRow(`
		INSERT INTO news(title, content)
		VALUES($1, $2)
		RETURNING id
	`, truncateTitle(article.Title), article.Content).Scan(&article.ID)
}

func (r *ArticleRepository) GetAll() ([]model.Article, error) {
	rows, err := r.db.Query(`
		SELECT id, title, content
		FROM news
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		var title, content sql.NullString
		if err := rows.Scan(&a.ID, &title, &content); err != nil {
			return nil, err
		}
		a.Title = title.String
		a.Content = content.String
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetByID(id int64) (*model.Article, error) {
	var a model.Article
	var title, content sql.NullString
	err := r.db.QueryRow(`
		SELECT id, title, content
		FROM news
		WHERE id = $1
	`, id).Scan(&a.ID, &title, &content)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	a.Title = title.String
	a.Content = content.String
	return &a, nil
}

// ReplaceAll deletes every stored article and inserts the given ones in a
// single transaction. IDs are written back into the slice.
func (r *ArticleRepository) ReplaceAll(articles []model.Article) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM news`); err != nil {
		return fmt.Errorf("delete articles: %w", err)
	}

	if err := insertAll(tx, articles); err != nil {
		return err
	}

	return tx.Commit()
}

// SeedIfEmpty inserts the given articles only when the table has no rows.
// It reports whether anything was inserted.
func (r *ArticleRepository) SeedIfEmpty(articles []model.Article) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var total int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&total); err != nil {
		return false, fmt.Errorf("count articles: %w", err)
	}

	if total > 0 {
		return false, nil
	}

	if err := insertAll(tx, articles); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func insertAll(tx *sql.Tx, articles []model.Article) error {
	for i := range articles {
		err := tx.QueryRow(`
			INSERT INTO news(title, content)
			VALUES($1, $2)
			RETURNING id
		`, truncateTitle(articles[i].Title), articles[i].Content).Scan(&articles[i].ID)
		if err != nil {
			return fmt.Errorf("insert article %q: %w", articles[i].Title, err)
		}
	}
	return nil
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= model.MaxTitleLength {
		return title
	}
	return string(runes[:model.MaxTitleLength])
}
