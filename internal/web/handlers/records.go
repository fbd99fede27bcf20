package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// RecordsHandler serves structured sale records
type RecordsHandler struct {
	DB    *sql.DB
	Table string
}

// RecordResponse represents one structured sale record
type RecordResponse struct {
	RecordKey         string   `json:"record_key"`
	ParcelNumber      string   `json:"parcel_number"`
	TransferDate      *string  `json:"transfer_date"`
	RawAddress        *string  `json:"raw_address"`
	AddressNumber     *string  `json:"address_number"`
	AddressNumberLow  *string  `json:"address_number_low"`
	AddressNumberHigh *string  `json:"address_number_high"`
	PreDirectional    *string  `json:"pre_directional"`
	StreetName        *string  `json:"street_name"`
	PostType          *string  `json:"post_type"`
	PostDirectional   *string  `json:"post_directional"`
	OccupancyType     *string  `json:"occupancy_type"`
	OccupancyID       *string  `json:"occupancy_identifier"`
	PlaceName         *string  `json:"place_name"`
	StateName         *string  `json:"state_name"`
	AddressRangeType  *string  `json:"address_range_type"`
	ParcelJoin        *string  `json:"parcelid_join"`
	AmountNum         *int64   `json:"amount_num"`
	TotalRooms        *int     `json:"total_rooms"`
	Bedrooms          *int     `json:"bedrooms"`
	FullBaths         *int     `json:"full_baths"`
	HalfBaths         *int     `json:"half_baths"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Issues            *string  `json:"issues"`
}

const recordColumns = `record_key, parcel_number, transfer_date, raw_address,
	address_number, address_number_low, address_number_high,
	pre_directional, street_name, post_type, post_directional,
	occupancy_type, occupancy_identifier, place_name, state_name,
	address_range_type, parcelid_join, amount_num,
	total_rooms, bedrooms, full_baths, half_baths,
	latitude, longitude, issues`

func scanRecord(scanner interface{ Scan(...interface{}) error }) (RecordResponse, error) {
	var rec RecordResponse
	err := scanner.Scan(
		&rec.RecordKey, &rec.ParcelNumber, &rec.TransferDate, &rec.RawAddress,
		&rec.AddressNumber, &rec.AddressNumberLow, &rec.AddressNumberHigh,
		&rec.PreDirectional, &rec.StreetName, &rec.PostType, &rec.PostDirectional,
		&rec.OccupancyType, &rec.OccupancyID, &rec.PlaceName, &rec.StateName,
		&rec.AddressRangeType, &rec.ParcelJoin, &rec.AmountNum,
		&rec.TotalRooms, &rec.Bedrooms, &rec.FullBaths, &rec.HalfBaths,
		&rec.Latitude, &rec.Longitude, &rec.Issues,
	)
	return rec, err
}

// ListRecords returns a page of records, optionally filtered by range type
func (h *RecordsHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, recordColumns, h.Table)
	args := []interface{}{}
	if rt := r.URL.Query().Get("range_type"); rt != "" {
		query += ` WHERE address_range_type = $1`
		args = append(args, rt)
	}
	query += fmt.Sprintf(` ORDER BY parcel_number, transfer_date LIMIT %d OFFSET %d`, limit, offset)

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	records := []RecordResponse{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	writeJSON(w, map[string]interface{}{
		"records": records,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetRecord returns a single record by record key
func (h *RecordsHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	row := h.DB.QueryRow(
		fmt.Sprintf(`SELECT %s FROM %s WHERE record_key = $1`, recordColumns, h.Table), key)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rec)
}

// GetParcelRecords returns all sale records for one parcel
func (h *RecordsHandler) GetParcelRecords(w http.ResponseWriter, r *http.Request) {
	parcel := mux.Vars(r)["parcel"]

	rows, err := h.DB.Query(
		fmt.Sprintf(`SELECT %s FROM %s WHERE parcel_number = $1 ORDER BY transfer_date`,
			recordColumns, h.Table), parcel)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	records := []RecordResponse{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		http.Error(w, "Parcel not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]interface{}{
		"parcel_number": parcel,
		"records":       records,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
