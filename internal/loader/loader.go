// Package loader persists resolved sale records to Postgres with
// upsert-on-conflict semantics keyed by record_key.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hamilton-sales/internal/address"
	"github.com/hamilton-sales/internal/debug"
	"github.com/hamilton-sales/internal/geocode"
	"github.com/hamilton-sales/internal/pipeline"
)

// Loader writes records into the structured sales table.
type Loader struct {
	db        *sql.DB
	table     string
	batchSize int
	debug     bool
}

// New creates a loader. batchSize bounds rows per transaction.
func New(db *sql.DB, table string, batchSize int, debugEnabled bool) *Loader {
	if table == "" {
		table = "sales_structured"
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Loader{db: db, table: table, batchSize: batchSize, debug: debugEnabled}
}

// EnsureSchema creates the structured sales table if it does not exist.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			record_key              TEXT PRIMARY KEY,
			parcel_number           TEXT NOT NULL,
			transfer_date           TEXT,
			raw_address             TEXT,
			bbb                     TEXT,
			finsqft                 TEXT,
			use_code                TEXT,
			year_built              TEXT,
			amount                  TEXT,
			issues                  TEXT,
			recipient               TEXT,
			address_number          TEXT,
			address_number_low      TEXT,
			address_number_high     TEXT,
			address_number_prefix   TEXT,
			address_number_suffix   TEXT,
			street_name             TEXT,
			pre_directional         TEXT,
			pre_modifier            TEXT,
			pre_type                TEXT,
			post_directional        TEXT,
			post_modifier           TEXT,
			post_type               TEXT,
			corner_of               TEXT,
			intersection_separator  TEXT,
			landmark_name           TEXT,
			usps_box_group_id       TEXT,
			usps_box_group_type     TEXT,
			usps_box_id             TEXT,
			usps_box_type           TEXT,
			building_name           TEXT,
			occupancy_type          TEXT,
			occupancy_identifier    TEXT,
			subaddress_identifier   TEXT,
			subaddress_type         TEXT,
			place_name              TEXT,
			state_name              TEXT,
			address_range_type      TEXT,
			parcelid_join           TEXT,
			amount_num              BIGINT,
			total_rooms             INTEGER,
			bedrooms                INTEGER,
			full_baths              INTEGER,
			half_baths              INTEGER,
			row_hash                TEXT NOT NULL,
			formatted_address       TEXT,
			longitude               DOUBLE PRECISION,
			latitude                DOUBLE PRECISION,
			geo_house_num           TEXT,
			geo_street_name         TEXT,
			api_city                TEXT,
			county                  TEXT,
			api_state               TEXT,
			api_postal_code         TEXT,
			confidence              DOUBLE PRECISION,
			first_seen_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_seen_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, l.table))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", l.table, err)
	}

	_, err = l.db.ExecContext(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS idx_%s_parcel ON %s (parcel_number)`,
		l.table, l.table))
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", l.table, err)
	}
	return nil
}

// Upsert writes records in batches. The conflict target is record_key;
// unchanged rows (same row_hash) only advance last_seen_at, so re-scrapes
// are cheap and idempotent. Returns the number of rows attempted.
func (l *Loader) Upsert(ctx context.Context, records []pipeline.Record) (int, error) {
	defer debug.DebugTiming(l.debug, "upsert records")()

	total := 0
	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := l.upsertBatch(ctx, records[start:end]); err != nil {
			return total, err
		}
		total += end - start
	}
	debug.DebugOutput(l.debug, "upserted %d records into %s", total, l.table)
	return total, nil
}

func (l *Loader) upsertBatch(ctx context.Context, records []pipeline.Record) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, l.upsertSQL())
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, upsertArgs(rec)...); err != nil {
			return fmt.Errorf("failed to upsert record %s: %w", rec.RecordKey, err)
		}
	}
	return tx.Commit()
}

func (l *Loader) upsertSQL() string {
	return fmt.Sprintf(`
		INSERT INTO %s (
			record_key, parcel_number, transfer_date, raw_address, bbb,
			finsqft, use_code, year_built, amount, issues,
			recipient, address_number, address_number_low, address_number_high,
			address_number_prefix, address_number_suffix, street_name,
			pre_directional, pre_modifier, pre_type,
			post_directional, post_modifier, post_type,
			corner_of, intersection_separator, landmark_name,
			usps_box_group_id, usps_box_group_type, usps_box_id, usps_box_type,
			building_name, occupancy_type, occupancy_identifier,
			subaddress_identifier, subaddress_type,
			place_name, state_name, address_range_type, parcelid_join,
			amount_num, total_rooms, bedrooms, full_baths, half_baths,
			row_hash
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45
		)
		ON CONFLICT (record_key) DO UPDATE SET
			raw_address = EXCLUDED.raw_address,
			bbb = EXCLUDED.bbb,
			finsqft = EXCLUDED.finsqft,
			use_code = EXCLUDED.use_code,
			year_built = EXCLUDED.year_built,
			amount = EXCLUDED.amount,
			issues = EXCLUDED.issues,
			recipient = EXCLUDED.recipient,
			address_number = EXCLUDED.address_number,
			address_number_low = EXCLUDED.address_number_low,
			address_number_high = EXCLUDED.address_number_high,
			address_number_prefix = EXCLUDED.address_number_prefix,
			address_number_suffix = EXCLUDED.address_number_suffix,
			street_name = EXCLUDED.street_name,
			pre_directional = EXCLUDED.pre_directional,
			pre_modifier = EXCLUDED.pre_modifier,
			pre_type = EXCLUDED.pre_type,
			post_directional = EXCLUDED.post_directional,
			post_modifier = EXCLUDED.post_modifier,
			post_type = EXCLUDED.post_type,
			corner_of = EXCLUDED.corner_of,
			intersection_separator = EXCLUDED.intersection_separator,
			landmark_name = EXCLUDED.landmark_name,
			usps_box_group_id = EXCLUDED.usps_box_group_id,
			usps_box_group_type = EXCLUDED.usps_box_group_type,
			usps_box_id = EXCLUDED.usps_box_id,
			usps_box_type = EXCLUDED.usps_box_type,
			building_name = EXCLUDED.building_name,
			occupancy_type = EXCLUDED.occupancy_type,
			occupancy_identifier = EXCLUDED.occupancy_identifier,
			subaddress_identifier = EXCLUDED.subaddress_identifier,
			subaddress_type = EXCLUDED.subaddress_type,
			place_name = EXCLUDED.place_name,
			state_name = EXCLUDED.state_name,
			address_range_type = EXCLUDED.address_range_type,
			parcelid_join = EXCLUDED.parcelid_join,
			amount_num = EXCLUDED.amount_num,
			total_rooms = EXCLUDED.total_rooms,
			bedrooms = EXCLUDED.bedrooms,
			full_baths = EXCLUDED.full_baths,
			half_baths = EXCLUDED.half_baths,
			row_hash = EXCLUDED.row_hash,
			last_seen_at = now(),
			updated_at = CASE
				WHEN %s.row_hash IS DISTINCT FROM EXCLUDED.row_hash THEN now()
				ELSE %s.updated_at
			END`, l.table, l.table, l.table)
}

func upsertArgs(rec pipeline.Record) []interface{} {
	p := rec.Parts
	if p == nil {
		p = &address.Parts{}
	}
	return []interface{}{
		rec.RecordKey,
		rec.Raw.ParcelNumber,
		nullIfEmpty(rec.Raw.TransferDate),
		nullIfEmpty(rec.Raw.Address),
		nullIfEmpty(rec.Raw.BBB),
		nullIfEmpty(rec.Raw.FinSqFt),
		nullIfEmpty(rec.Raw.Use),
		nullIfEmpty(rec.Raw.YearBuilt),
		nullIfEmpty(rec.Raw.Amount),
		nullIfEmpty(strings.Join(rec.Issues, "; ")),
		nullIfEmpty(p.Recipient),
		nullIfEmpty(p.AddressNumber),
		nullIfEmpty(p.AddressNumberLow),
		nullIfEmpty(p.AddressNumberHigh),
		nullIfEmpty(p.AddressNumberPrefix),
		nullIfEmpty(p.AddressNumberSuffix),
		nullIfEmpty(p.StreetName),
		nullIfEmpty(p.StreetNamePreDirectional),
		nullIfEmpty(p.StreetNamePreModifier),
		nullIfEmpty(p.StreetNamePreType),
		nullIfEmpty(p.StreetNamePostDirectional),
		nullIfEmpty(p.StreetNamePostModifier),
		nullIfEmpty(p.StreetNamePostType),
		nullIfEmpty(p.CornerOf),
		nullIfEmpty(p.IntersectionSeparator),
		nullIfEmpty(p.LandmarkName),
		nullIfEmpty(p.USPSBoxGroupID),
		nullIfEmpty(p.USPSBoxGroupType),
		nullIfEmpty(p.USPSBoxID),
		nullIfEmpty(p.USPSBoxType),
		nullIfEmpty(p.BuildingName),
		nullIfEmpty(p.OccupancyType),
		nullIfEmpty(p.OccupancyIdentifier),
		nullIfEmpty(p.SubaddressIdentifier),
		nullIfEmpty(p.SubaddressType),
		nullIfEmpty(p.PlaceName),
		nullIfEmpty(p.StateName),
		nullIfEmpty(string(p.AddressRangeType)),
		nullIfEmpty(p.ParcelJoin),
		nullableInt(p.AmountNum),
		nullableInt(p.TotalRooms),
		nullableInt(p.Bedrooms),
		nullableInt(p.FullBaths),
		nullableInt(p.HalfBaths),
		rec.RowHash,
	}
}

// PendingGeocodes lists parcels still lacking coordinates, one target per
// parcel with the raw address as the lookup query.
func (l *Loader) PendingGeocodes(ctx context.Context) ([]geocode.Target, error) {
	rows, err := l.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT DISTINCT parcel_number, COALESCE(raw_address, '')
		FROM %s
		WHERE latitude IS NULL OR longitude IS NULL`, l.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending geocodes: %w", err)
	}
	defer rows.Close()

	var targets []geocode.Target
	for rows.Next() {
		var t geocode.Target
		if err := rows.Scan(&t.ParcelNumber, &t.Address); err != nil {
			return nil, fmt.Errorf("failed to scan pending geocode row: %w", err)
		}
		t.Address = address.Preclean(t.Address)
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// ApplyGeocodes writes enrichment results back by parcel number.
func (l *Loader) ApplyGeocodes(ctx context.Context, results map[string]geocode.Result) error {
	stmt, err := l.db.PrepareContext(ctx, fmt.Sprintf(`
		UPDATE %s SET
			formatted_address = $2,
			longitude = $3,
			latitude = $4,
			geo_house_num = $5,
			geo_street_name = $6,
			api_city = $7,
			county = $8,
			api_state = $9,
			api_postal_code = $10,
			confidence = $11,
			updated_at = now()
		WHERE parcel_number = $1`, l.table))
	if err != nil {
		return fmt.Errorf("failed to prepare geocode update: %w", err)
	}
	defer stmt.Close()

	for parcel, r := range results {
		_, err := stmt.ExecContext(ctx, parcel,
			r.FormattedAddress, r.Longitude, r.Latitude, r.HouseNum,
			r.StreetName, r.APICity, r.County, r.APIState,
			r.APIPostalCode, r.Confidence)
		if err != nil {
			return fmt.Errorf("failed to apply geocode for parcel %s: %w", parcel, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
