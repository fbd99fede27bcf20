package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
)

// APIHandler handles general API endpoints
type APIHandler struct {
	DB    *sql.DB
	Table string
}

// StatsResponse represents overall pipeline statistics
type StatsResponse struct {
	TotalRecords    int            `json:"total_records"`
	UniqueParcels   int            `json:"unique_parcels"`
	Geocoded        int            `json:"geocoded"`
	GeocodeRate     float64        `json:"geocode_rate"`
	WithIssues      int            `json:"with_issues"`
	ByRangeType     map[string]int `json:"by_range_type"`
	ByHousingSignal map[string]int `json:"by_occupancy_type"`
}

// GetStats returns overall system statistics
func (h *APIHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats StatsResponse

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) as total,
			COUNT(DISTINCT parcel_number) as parcels,
			COUNT(CASE WHEN latitude IS NOT NULL AND longitude IS NOT NULL THEN 1 END) as geocoded,
			COUNT(CASE WHEN issues IS NOT NULL THEN 1 END) as with_issues
		FROM %s`, h.Table)

	err := h.DB.QueryRow(query).Scan(
		&stats.TotalRecords,
		&stats.UniqueParcels,
		&stats.Geocoded,
		&stats.WithIssues,
	)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if stats.TotalRecords > 0 {
		stats.GeocodeRate = float64(stats.Geocoded) / float64(stats.TotalRecords) * 100
	}

	stats.ByRangeType = make(map[string]int)
	rangeQuery := fmt.Sprintf(`
		SELECT COALESCE(address_range_type, 'none'), COUNT(*)
		FROM %s
		GROUP BY address_range_type`, h.Table)

	rows, err := h.DB.Query(rangeQuery)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var rangeType string
		var count int
		if err := rows.Scan(&rangeType, &count); err != nil {
			continue
		}
		stats.ByRangeType[rangeType] = count
	}

	stats.ByHousingSignal = make(map[string]int)
	occQuery := fmt.Sprintf(`
		SELECT occupancy_type, COUNT(*)
		FROM %s
		WHERE occupancy_type IS NOT NULL
		GROUP BY occupancy_type`, h.Table)

	occRows, err := h.DB.Query(occQuery)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer occRows.Close()

	for occRows.Next() {
		var occType string
		var count int
		if err := occRows.Scan(&occType, &count); err != nil {
			continue
		}
		stats.ByHousingSignal[occType] = count
	}

	writeJSON(w, stats)
}

// Health reports service and database health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.DB.Ping(); err != nil {
		status = "database unavailable"
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
