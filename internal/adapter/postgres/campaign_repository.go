package postgres

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// UpsertSynced writes the campaign and its children in one transaction.
// The conflict clause only fires when a mirrored column differs, so an
// unchanged campaign returns no row and keeps its updated_at.
func (r *CampaignRepository) UpsertSynced(ctx context.Context, c *domain.Campaign) (changed bool, err error) {
	if c.ExternalID == nil || *c.ExternalID == "" {
		return false, port.NewValidationError("external_id", "required for synced campaigns")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO campaigns (id, owner_id, external_id, origin, name, objective, status,
                               daily_budget, lifetime_budget, created_at, updated_at)
        VALUES ($1, $2, $3, 'SYNCED', $4, $5, $6, $7::numeric, $8::numeric, now(), now())
        ON CONFLICT (external_id) DO UPDATE SET
            origin          = 'SYNCED',
            name            = EXCLUDED.name,
            objective       = EXCLUDED.objective,
            status          = EXCLUDED.status,
            daily_budget    = EXCLUDED.daily_budget,
            lifetime_budget = EXCLUDED.lifetime_budget,
            updated_at      = now()
        WHERE campaigns.owner_id = EXCLUDED.owner_id
          AND (campaigns.origin, campaigns.name, campaigns.objective, campaigns.status,
               campaigns.daily_budget, campaigns.lifetime_budget)
              IS DISTINCT FROM
              ('SYNCED', EXCLUDED.name, EXCLUDED.objective, EXCLUDED.status,
               EXCLUDED.daily_budget, EXCLUDED.lifetime_budget)
        RETURNING id, created_at, updated_at`,
		c.ID, c.OwnerID, *c.ExternalID, c.Name, c.Objective, c.Status,
		numeric(c.DailyBudget), numeric(c.LifetimeBudget),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	switch {
	case err == nil:
		changed = true
	case errors.Is(err, pgx.ErrNoRows):
		// Unchanged, or owned by someone else.
		var owner string
		err = tx.QueryRow(ctx,
			`SELECT id, owner_id, created_at, updated_at FROM campaigns WHERE external_id = $1`,
			*c.ExternalID,
		).Scan(&c.ID, &owner, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return false, err
		}
		if owner != c.OwnerID {
			err = port.ErrOwnershipConflict
			return false, err
		}
	default:
		return false, err
	}
	c.Origin = domain.OriginSynced

	for i := range c.AdSets {
		var setChanged bool
		setChanged, err = upsertAdSet(ctx, tx, c.ID, &c.AdSets[i])
		if err != nil {
			return false, err
		}
		changed = changed || setChanged
	}
	return changed, nil
}

func upsertAdSet(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, s *domain.AdSet) (bool, error) {
	if s.ExternalID == nil {
		return false, nil
	}
	changed := true
	err := tx.QueryRow(ctx, `
        INSERT INTO ad_sets (id, campaign_id, external_id, name, status, daily_budget, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6::numeric, now())
        ON CONFLICT (external_id) DO UPDATE SET
            name         = EXCLUDED.name,
            status       = EXCLUDED.status,
            daily_budget = EXCLUDED.daily_budget,
            updated_at   = now()
        WHERE ad_sets.campaign_id = EXCLUDED.campaign_id
          AND (ad_sets.name, ad_sets.status, ad_sets.daily_budget)
              IS DISTINCT FROM (EXCLUDED.name, EXCLUDED.status, EXCLUDED.daily_budget)
        RETURNING id, updated_at`,
		uuid.New(), campaignID, *s.ExternalID, s.Name, s.Status, numeric(s.DailyBudget),
	).Scan(&s.ID, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		changed = false
		err = tx.QueryRow(ctx,
			`SELECT id, updated_at FROM ad_sets WHERE external_id = $1 AND campaign_id = $2`,
			*s.ExternalID, campaignID,
		).Scan(&s.ID, &s.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("ad set %s: %w", *s.ExternalID, port.ErrOwnershipConflict)
		}
	}
	if err != nil {
		return false, err
	}
	s.CampaignID = campaignID

	for i := range s.Ads {
		ad := &s.Ads[i]
		if ad.ExternalID == nil {
			continue
		}
		tag, err := tx.Exec(ctx, `
            INSERT INTO ads (id, ad_set_id, external_id, name, status, updated_at)
            VALUES ($1, $2, $3, $4, $5, now())
            ON CONFLICT (external_id) DO UPDATE SET
                name       = EXCLUDED.name,
                status     = EXCLUDED.status,
                updated_at = now()
            WHERE ads.ad_set_id = EXCLUDED.ad_set_id
              AND (ads.name, ads.status) IS DISTINCT FROM (EXCLUDED.name, EXCLUDED.status)`,
			uuid.New(), s.ID, *ad.ExternalID, ad.Name, ad.Status,
		)
		if err != nil {
			return false, err
		}
		if tag.RowsAffected() > 0 {
			changed = true
		}
		ad.AdSetID = s.ID
	}
	return changed, nil
}

// Create inserts a new campaign row. A taken external id is reported as
// port.ErrOwnershipConflict.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, owner_id, external_id, origin, name, objective, status,
                               daily_budget, lifetime_budget, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10, $11)`,
		c.ID, c.OwnerID, c.ExternalID, c.Origin, c.Name, c.Objective, c.Status,
		numeric(c.DailyBudget), numeric(c.LifetimeBudget), c.CreatedAt, c.UpdatedAt,
	)
	return mapErr(err)
}

// Get returns the campaign with its ad sets and ads.
func (r *CampaignRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return nil, mapErr(err)
	}

	rows, err = r.pool.Query(ctx, `
        SELECT id, campaign_id, external_id, name, status, daily_budget::text, updated_at
        FROM ad_sets WHERE campaign_id = $1 ORDER BY name, id`, c.ID)
	if err != nil {
		return nil, err
	}
	c.AdSets, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSet, error) {
		var (
			s     domain.AdSet
			daily *string
		)
		if err := row.Scan(&s.ID, &s.CampaignID, &s.ExternalID, &s.Name, &s.Status, &daily, &s.UpdatedAt); err != nil {
			return s, err
		}
		var err error
		s.DailyBudget, err = parseNumeric(daily)
		return s, err
	})
	if err != nil {
		return nil, err
	}
	if len(c.AdSets) == 0 {
		return &c, nil
	}

	index := make(map[uuid.UUID]int, len(c.AdSets))
	for i, s := range c.AdSets {
		index[s.ID] = i
	}
	rows, err = r.pool.Query(ctx, `
        SELECT a.id, a.ad_set_id, a.external_id, a.name, a.status, a.updated_at
        FROM ads a JOIN ad_sets s ON s.id = a.ad_set_id
        WHERE s.campaign_id = $1 ORDER BY a.name, a.id`, c.ID)
	if err != nil {
		return nil, err
	}
	ads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var a domain.Ad
		err := row.Scan(&a.ID, &a.AdSetID, &a.ExternalID, &a.Name, &a.Status, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, err
	}
	for _, a := range ads {
		i := index[a.AdSetID]
		c.AdSets[i].Ads = append(c.AdSets[i].Ads, a)
	}
	return &c, nil
}

// List returns one page of campaigns, most recently updated first.
func (r *CampaignRepository) List(ctx context.Context, ownerID string, filter port.CampaignFilter) ([]domain.Campaign, int, error) {
	const where = `
        WHERE owner_id = $1
          AND ((cardinality($2::text[]) = 0 AND status <> 'ARCHIVED') OR status = ANY($2::text[]))
          AND ($3::text = '' OR name ILIKE $4::text)`

	search := filter.Search
	args := []any{ownerID, statusStrings(filter.Statuses), search, likePattern(search)}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns`+where+`
        ORDER BY updated_at DESC, id
        LIMIT $5 OFFSET $6`,
		append(args, limit, max(filter.Offset, 0))...,
	)
	if err != nil {
		return nil, 0, err
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// UpdateStatus sets status and updated_at of one owned campaign.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, ownerID string, id uuid.UUID, status domain.Status, at time.Time) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns SET status = $3, updated_at = $4
        WHERE id = $1 AND owner_id = $2
        RETURNING `+campaignColumns, id, ownerID, status, at)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// UpdateStatusBatch updates all owned campaigns among ids in one statement.
func (r *CampaignRepository) UpdateStatusBatch(ctx context.Context, ownerID string, ids []uuid.UUID, status domain.Status, at time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = $3, updated_at = $4
        WHERE owner_id = $1 AND id = ANY($2)`,
		ownerID, ids, status, at)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// MarkSynced attaches externalID to an owned campaign and flips its origin.
func (r *CampaignRepository) MarkSynced(ctx context.Context, ownerID string, id uuid.UUID, externalID string, at time.Time) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns SET external_id = $3, origin = 'SYNCED', updated_at = $4
        WHERE id = $1 AND owner_id = $2
        RETURNING `+campaignColumns, id, ownerID, externalID, at)
	if err != nil {
		return nil, mapErr(err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// Count returns the number of campaigns owned by ownerID.
func (r *CampaignRepository) Count(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE owner_id = $1`, ownerID).Scan(&n)
	return n, err
}
