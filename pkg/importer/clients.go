package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/campos-estilistas/salon-sdk/modules/crm/domain/aggregates/client"
	"github.com/campos-estilistas/salon-sdk/pkg/legacy"
	"github.com/campos-estilistas/salon-sdk/pkg/normalize"
)

// Ledger column names as exported by the previous booking system.
const (
	colLedgerID        = "ID"
	colLedgerFirstName = "Nombre"
	colLedgerLastName  = "Apellido"
	colLedgerEmail     = "E-mail"
	colLedgerPhone     = "Teléfono"
	colLedgerBirthDate = "Cumpleaños (YYYY-MM-DD)"
)

type ClientImportOptions struct {
	LedgerPath string
	// BatchSize controls progress-log granularity only; batches have no
	// transactional meaning.
	BatchSize int
	ErrorCap  int
}

// ClientImporter is the clients pass: ledger row in, cleaned client out, one
// create call per valid row. A failing row never aborts the pass.
type ClientImporter struct {
	clients client.Repository
	log     *logrus.Logger
	opts    ClientImportOptions
	now     func() time.Time
}

func NewClientImporter(clients client.Repository, log *logrus.Logger, opts ClientImportOptions) *ClientImporter {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	return &ClientImporter{
		clients: clients,
		log:     log,
		opts:    opts,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Run imports the client ledger. A source-level failure (missing or
// malformed artifact) is returned before any record is processed; from then
// on every failure is contained to its record.
func (i *ClientImporter) Run(ctx context.Context) (*RunReport, error) {
	reader, err := legacy.OpenLedger(i.opts.LedgerPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	report := newRunReport("clients", i.opts.ErrorCap)
	i.log.Infof("clients pass %s: reading ledger %s", report.RunID, i.opts.LedgerPath)

	index := 0
	for {
		row, _, err := reader.Read()
		if err == io.EOF {
			break
		}
		index++
		if err != nil {
			// A read failure mid-stream is not recoverable per row.
			report.addError(index, "", err)
			break
		}

		i.importRow(ctx, report, index, row)

		if index%i.opts.BatchSize == 0 {
			i.log.Infof("clients pass: batch %d done (%d records so far, %d created)",
				index/i.opts.BatchSize, index, report.Created)
		}
	}

	report.finish()
	return report, nil
}

func (i *ClientImporter) importRow(ctx context.Context, report *RunReport, index int, row legacy.RawRow) {
	firstName := normalize.CleanName(row[colLedgerFirstName])
	lastName := normalize.CleanName(row[colLedgerLastName])

	if firstName == "" {
		report.Skipped++
		i.log.Warnf("clients pass: record %d has no usable first name, skipped", index)
		return
	}

	email := normalize.CleanEmail(row[colLedgerEmail])
	phone := normalize.CleanPhone(row[colLedgerPhone])
	birthDate, hasBirthDate := normalize.ParseBirthDate(row[colLedgerBirthDate], i.now())

	opts := []client.Option{
		client.WithSourceNote(fmt.Sprintf("Imported from legacy system. Original ID: %s", strings.TrimSpace(row[colLedgerID]))),
		client.WithSourceRef(row[colLedgerID]),
	}
	if email != "" {
		opts = append(opts, client.WithEmail(email))
	}
	if phone != "" {
		opts = append(opts, client.WithPhone(phone))
	}
	if hasBirthDate {
		opts = append(opts, client.WithBirthDate(birthDate))
	}

	if _, err := i.clients.Create(ctx, client.New(firstName, lastName, opts...)); err != nil {
		label := strings.TrimSpace(row[colLedgerFirstName] + " " + row[colLedgerLastName])
		report.addError(index, label, err)
		i.log.Errorf("clients pass: record %d (%s): %v", index, label, err)
		return
	}

	report.Created++
	if email != "" {
		report.WithEmail++
	}
	if phone != "" {
		report.WithPhone++
	}
	if hasBirthDate {
		report.WithBirthDate++
	}
	if report.Created%100 == 0 {
		i.log.Infof("clients pass: %d clients created so far", report.Created)
	}
}
