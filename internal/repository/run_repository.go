package repository

import (
	"database/sql"

	"newslens/internal/model"

	"github.com/lib/pq"
)

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun archives one completed pipeline run with its articles and
// perspectives in a single transaction.
func (r *RunRepository) SaveRun(run *model.ResearchRun) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO research_run(query, context, combined_summary, article_count, model_used, followups)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, run.Query, run.Context, run.CombinedSummary, len(run.Articles), run.ModelUsed, pq.Array(run.Followups)).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return err
	}

	for _, a := range run.Articles {
		_, err = tx.Exec(`
			INSERT INTO run_article(run_id, source, url, title, summary, credibility_label, credibility_score, priority_rank, priority_tier, thumbnail)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, run.ID, a.Source, a.URL, a.Title, a.Summary, a.CredibilityLabel, a.CredibilityScore, a.PriorityRank, a.PriorityTier, a.Thumbnail)
		if err != nil {
			return err
		}
	}

	for _, p := range run.Perspectives {
		_, err = tx.Exec(`
			INSERT INTO run_perspective(run_id, label, narrative, supporting_fact, source_urls)
			VALUES($1, $2, $3, $4, $5)
		`, run.ID, p.Label, p.Narrative, p.SupportingFact, pq.Array(p.SourceURLs))
		if err != nil {
			return err
		}
	}

	run.ArticleCount = len(run.Articles)

	return tx.Commit()
}

// GetRuns lists archived runs newest first, without their articles.
func (r *RunRepository) GetRuns(limit, offset int) ([]model.ResearchRun, error) {
	rows, err := r.db.Query(`
		SELECT id, query, context, combined_summary, article_count, model_used, followups, created_at
		FROM research_run
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.ResearchRun
	for rows.Next() {
		var run model.ResearchRun
		err := rows.Scan(&run.ID, &run.Query, &run.Context, &run.CombinedSummary, &run.ArticleCount, &run.ModelUsed, pq.Array(&run.Followups), &run.CreatedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (r *RunRepository) GetRunTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM research_run`).Scan(&total)
	return total, err
}

// GetRunByID loads one archived run with its articles and perspectives.
// Returns (nil, nil) when no such run exists.
func (r *RunRepository) GetRunByID(id int64) (*model.ResearchRun, error) {
	var run model.ResearchRun
	err := r.db.QueryRow(`
		SELECT id, query, context, combined_summary, article_count, model_used, followups, created_at
		FROM research_run
		WHERE id = $1
	`, id).Scan(&run.ID, &run.Query, &run.Context, &run.CombinedSummary, &run.ArticleCount, &run.ModelUsed, pq.Array(&run.Followups), &run.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	articles, err := r.getRunArticles(id)
	if err != nil {
		return nil, err
	}
	run.Articles = articles

	perspectives, err := r.getRunPerspectives(id)
	if err != nil {
		return nil, err
	}
	run.Perspectives = perspectives

	return &run, nil
}

func (r *RunRepository) getRunArticles(runID int64) ([]model.ProcessedArticle, error) {
	rows, err := r.db.Query(`
		SELECT source, url, title, summary, credibility_label, credibility_score, priority_rank, priority_tier, thumbnail
		FROM run_article
		WHERE run_id = $1
		ORDER BY priority_rank ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.ProcessedArticle
	for rows.Next() {
		var a model.ProcessedArticle
		err := rows.Scan(&a.Source, &a.URL, &a.Title, &a.Summary, &a.CredibilityLabel, &a.CredibilityScore, &a.PriorityRank, &a.PriorityTier, &a.Thumbnail)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *RunRepository) getRunPerspectives(runID int64) ([]model.Perspective, error) {
	rows, err := r.db.Query(`
		SELECT label, narrative, supporting_fact, source_urls
		FROM run_perspective
		WHERE run_id = $1
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perspectives []model.Perspective
	for rows.Next() {
		var p model.Perspective
		err := rows.Scan(&p.Label, &p.Narrative, &p.SupportingFact, pq.Array(&p.SourceURLs))
		if err != nil {
			return nil, err
		}
		perspectives = append(perspectives, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return perspectives, nil
}
