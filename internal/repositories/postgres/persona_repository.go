package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhlee/facilitysim/internal/models"
)

type PersonaRepository struct {
	pool *pgxpool.Pool
}

func NewPersonaRepository(pool *pgxpool.Pool) *PersonaRepository {
	return &PersonaRepository{pool: pool}
}

const personaInsert = `
        INSERT INTO personas (
            id, name, archetype, details, daily_schedule
        ) VALUES (
            $1, $2, $3, $4, $5
        )`

func (r *PersonaRepository) BulkCreate(ctx context.Context, personas []*models.Persona) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, persona := range personas {
		details, schedule, err := encodePersona(persona)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, personaInsert,
			persona.ID,
			persona.Name,
			persona.Archetype,
			details,
			schedule,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PersonaRepository) Create(ctx context.Context, persona *models.Persona) error {
	details, schedule, err := encodePersona(persona)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, personaInsert,
		persona.ID,
		persona.Name,
		persona.Archetype,
		details,
		schedule,
	)
	return err
}

func (r *PersonaRepository) GetAll(ctx context.Context) ([]*models.Persona, error) {
	query := `
        SELECT id, name, archetype, details, daily_schedule
        FROM personas`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []*models.Persona
	for rows.Next() {
		persona := &models.Persona{}
		var details, schedule []byte
		err := rows.Scan(
			&persona.ID,
			&persona.Name,
			&persona.Archetype,
			&details,
			&schedule,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(details, &persona.Details); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(schedule, &persona.Schedule); err != nil {
			return nil, err
		}
		personas = append(personas, persona)
	}
	return personas, rows.Err()
}

func (r *PersonaRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM personas").Scan(&count)
	return count, err
}

func (r *PersonaRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE personas CASCADE")
	return err
}

func encodePersona(persona *models.Persona) ([]byte, []byte, error) {
	details, err := json.Marshal(persona.Details)
	if err != nil {
		return nil, nil, err
	}
	schedule, err := json.Marshal(persona.Schedule)
	if err != nil {
		return nil, nil, err
	}
	return details, schedule, nil
}
