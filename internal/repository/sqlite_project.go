package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo on a *sql.DB or a *sql.Tx.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, name, description, project_start, project_budget, project_manager,
	wbs, resources, conversation_history, template_id, created_at, last_modified`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	docs, err := encodeDocs(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.ProjectStart.String(),
		p.ProjectBudget,
		p.ProjectManager,
		docs.wbs,
		docs.resources,
		docs.history,
		p.TemplateID,
		formatTime(p.CreatedAt),
		formatTime(p.LastModified),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProjectRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Project, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("project %q: %w", prefix, ErrNotFound)
	}
	if p, err := r.GetByID(ctx, prefix); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	pattern := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id LIKE ? ESCAPE '\' LIMIT 2`, pattern)
	if err != nil {
		return nil, fmt.Errorf("resolving project prefix: %w", err)
	}
	found, err := collect(rows)
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("project %q: %w", prefix, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("project %q: %w", prefix, ErrAmbiguous)
	}
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return collect(rows)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	docs, err := encodeDocs(p)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET name = ?, description = ?, project_start = ?, project_budget = ?,
		project_manager = ?, wbs = ?, resources = ?, conversation_history = ?, template_id = ?,
		last_modified = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.ProjectStart.String(),
		p.ProjectBudget,
		p.ProjectManager,
		docs.wbs,
		docs.resources,
		docs.history,
		p.TemplateID,
		formatTime(p.LastModified),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireOneRow(res, p.ID)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return nil
}

type projectDocs struct {
	wbs, resources, history string
}

func encodeDocs(p *domain.Project) (projectDocs, error) {
	var d projectDocs
	var err error
	if d.wbs, err = marshalDoc("wbs", p.WBS); err != nil {
		return d, err
	}
	if d.resources, err = marshalDoc("resources", p.Resources); err != nil {
		return d, err
	}
	if d.history, err = marshalDoc("conversation_history", p.ConversationHistory); err != nil {
		return d, err
	}
	return d, nil
}

func collect(rows *sql.Rows) ([]*domain.Project, error) {
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// scanProject returns sql.ErrNoRows unwrapped so GetByID can map it.
func scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	var startStr, wbsDoc, resourcesDoc, historyDoc, createdStr, modifiedStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &startStr, &p.ProjectBudget, &p.ProjectManager,
		&wbsDoc, &resourcesDoc, &historyDoc, &p.TemplateID,
		&createdStr, &modifiedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if startStr != "" {
		if p.ProjectStart, err = domain.ParseDate(startStr); err != nil {
			return nil, fmt.Errorf("parsing project_start: %w", err)
		}
	}
	if p.CreatedAt, err = parseTime("created_at", createdStr); err != nil {
		return nil, err
	}
	if p.LastModified, err = parseTime("last_modified", modifiedStr); err != nil {
		return nil, err
	}
	if p.WBS, err = unmarshalDoc[*domain.Task]("wbs", wbsDoc); err != nil {
		return nil, err
	}
	if p.Resources, err = unmarshalDoc[domain.Resource]("resources", resourcesDoc); err != nil {
		return nil, err
	}
	if p.ConversationHistory, err = unmarshalDoc[domain.ConversationEntry]("conversation_history", historyDoc); err != nil {
		return nil, err
	}
	return &p, nil
}
