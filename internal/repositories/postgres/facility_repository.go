package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhlee/facilitysim/internal/models"
)

type FacilityRepository struct {
	pool *pgxpool.Pool
}

func NewFacilityRepository(pool *pgxpool.Pool) *FacilityRepository {
	return &FacilityRepository{pool: pool}
}

const facilityInsert = `
        INSERT INTO facilities (
            id, name, type, location, capacity, hours, closed_days, restrictions
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8
        )`

func (r *FacilityRepository) BulkCreate(ctx context.Context, facilities []*models.Facility) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, facility := range facilities {
		hours, closedDays, err := encodeFacility(facility)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, facilityInsert,
			facility.ID,
			facility.Name,
			facility.Type,
			facility.Location,
			facility.Capacity,
			hours,
			closedDays,
			facility.Restrictions,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	hours, closedDays, err := encodeFacility(facility)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, facilityInsert,
		facility.ID,
		facility.Name,
		facility.Type,
		facility.Location,
		facility.Capacity,
		hours,
		closedDays,
		facility.Restrictions,
	)
	return err
}

func (r *FacilityRepository) GetAll(ctx context.Context) (map[string]*models.Facility, error) {
	query := `
        SELECT id, name, type, location, capacity, hours, closed_days, restrictions
        FROM facilities`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facilities := make(map[string]*models.Facility)
	for rows.Next() {
		facility := &models.Facility{}
		var hours []byte
		var closedDays []string
		err := rows.Scan(
			&facility.ID,
			&facility.Name,
			&facility.Type,
			&facility.Location,
			&facility.Capacity,
			&hours,
			&closedDays,
			&facility.Restrictions,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(hours, &facility.Hours); err != nil {
			return nil, err
		}
		facility.ClosedDays = make(map[models.DayOfWeek]bool, len(closedDays))
		for _, name := range closedDays {
			facility.ClosedDays[models.ParseDay(name)] = true
		}
		facilities[facility.Name] = facility
	}
	return facilities, rows.Err()
}

func (r *FacilityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM facilities").Scan(&count)
	return count, err
}

func (r *FacilityRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE facilities CASCADE")
	return err
}

func encodeFacility(facility *models.Facility) ([]byte, []string, error) {
	hours, err := json.Marshal(facility.Hours)
	if err != nil {
		return nil, nil, err
	}
	closedDays := make([]string, 0, len(facility.ClosedDays))
	for day, closed := range facility.ClosedDays {
		if closed {
			closedDays = append(closedDays, day.String())
		}
	}
	return hours, closedDays, nil
}
