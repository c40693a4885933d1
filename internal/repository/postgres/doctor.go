package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
)

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, crm, specialty, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.CRM,
		doctor.Specialty,
		doctor.Phone,
		doctor.Email,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", translateErr(err))
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = $1`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors ORDER BY name ASC`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, translateErr(err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	columns := []string{}
	values := []interface{}{}

	if req.Name != nil {
		columns = append(columns, "name")
		values = append(values, *req.Name)
	}
	if req.CRM != nil {
		columns = append(columns, "crm")
		values = append(values, *req.CRM)
	}
	if req.Specialty != nil {
		columns = append(columns, "specialty")
		values = append(values, *req.Specialty)
	}
	if req.Phone != nil {
		columns = append(columns, "phone")
		values = append(values, *req.Phone)
	}
	if req.Email != nil {
		columns = append(columns, "email")
		values = append(values, *req.Email)
	}

	if len(columns) == 0 {
		return r.Get(ctx, id)
	}

	set, args := setClause(columns, values)
	query := fmt.Sprintf(`UPDATE doctors SET %s WHERE id = $1 RETURNING *`, set)

	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, append([]interface{}{id}, args...)...); err != nil {
		return nil, translateErr(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM doctors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
