package dto

import (
	"strconv"

	"infopage/internal/domains/setting/model"
	"infopage/shared"

	"github.com/rs/zerolog/log"
)

// Settings is the typed view of the settings table used by the renderer.
type Settings struct {
	MaxRows       int    `json:"max_rows"`
	TimeFormat    string `json:"time_format"     validate:"strftime"`
	HasNow        bool   `json:"has_now"`
	NowText       string `json:"now_text"`
	NowMasterText string `json:"now_master_text"`
}

// DefaultSettings mirrors the seeded rows.
func DefaultSettings() Settings {
	var s Settings
	s.FromModels(model.Defaults())

	return s
}

// FromModels applies the rows over the current values. Null values and
// values that do not parse are ignored.
func (s *Settings) FromModels(rows []model.Setting) {
	for _, row := range rows {
		if !row.Value.Valid {
			continue
		}

		value := row.Value.String

		switch row.Key {
		case model.KeyMaxRows:
			if maxRows, err := strconv.Atoi(value); err == nil {
				s.MaxRows = maxRows
			} else {
				log.Warn().Str("value", value).Msg("ignoring invalid max_rows setting")
			}
		case model.KeyTimeFormat:
			s.TimeFormat = value
		case model.KeyHasNow:
			// Only an explicit false value switches the now row off.
			if hasNow := shared.ConvertStringToBool(value); hasNow != nil {
				s.HasNow = *hasNow
			} else {
				s.HasNow = true
			}
		case model.KeyNowText:
			s.NowText = value
		case model.KeyNowMasterText:
			s.NowMasterText = value
		}
	}
}
