package legacy

import (
	"encoding/json"
	"os"

	"github.com/go-faster/errors"
)

// RosterEntry is one record of the paginated professional/staff export.
// Unused envelope and record fields are tolerated and dropped.
type RosterEntry struct {
	ID            int     `json:"id"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	Descripcion   *string `json:"descripcion"`
	URLFotoPerfil string  `json:"url_foto_perfil"`
	Show          int     `json:"show"`
}

type rosterEnvelope struct {
	Total       int             `json:"total"`
	PerPage     int             `json:"per_page"`
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
	From        int             `json:"from"`
	To          int             `json:"to"`
	Data        json.RawMessage `json:"data"`
}

// ReadRoster decodes the roster export at path. Only the `data` array of the
// pagination envelope is consumed.
func ReadRoster(path string) ([]RosterEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "read roster %s", path)
		}
		return nil, errors.Wrapf(err, "read roster %s", path)
	}

	var envelope rosterEnvelope
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, errors.Wrapf(ErrMalformedSource, "decode roster %s: %v", path, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, errors.Wrapf(ErrMalformedSource, "roster %s: data missing or null", path)
	}

	var entries []RosterEntry
	if err := json.Unmarshal(envelope.Data, &entries); err != nil {
		return nil, errors.Wrapf(ErrMalformedSource, "roster %s: data is not an array of records: %v", path, err)
	}
	return entries, nil
}
