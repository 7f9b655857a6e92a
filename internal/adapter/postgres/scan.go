package postgres

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// campaignColumns is selected by every campaign query; budgets are read as
// text to keep the exact numeric value.
const campaignColumns = `id, owner_id, external_id, origin, name, objective, status,
	daily_budget::text, lifetime_budget::text, created_at, updated_at`

const uniqueViolation = "23505"

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c               domain.Campaign
		daily, lifetime *string
	)
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.ExternalID,
		&c.Origin,
		&c.Name,
		&c.Objective,
		&c.Status,
		&daily,
		&lifetime,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if c.DailyBudget, err = parseNumeric(daily); err != nil {
		return c, err
	}
	c.LifetimeBudget, err = parseNumeric(lifetime)
	return c, err
}

func parseNumeric(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parse numeric %q: %w", *s, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// numeric renders a nullable decimal as a query argument for a $n::numeric
// placeholder.
func numeric(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func statusStrings(st []domain.Status) []string {
	out := make([]string, len(st))
	for i, s := range st {
		out[i] = string(s)
	}
	return out
}

// likePattern escapes s for a case-insensitive substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// mapErr translates driver errors into port errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", port.ErrOwnershipConflict, pgErr.ConstraintName)
	}
	return err
}
