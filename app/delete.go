package app

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/timeutil"
	"github.com/rehabtrack/rehab/store"
	"github.com/rehabtrack/rehab/tracker"
)

// recordsOn returns the records of date, limited to ids when any are given.
func recordsOn(logs store.LogStore, date string, ids []string) []models.KeyedRecord {
	var out []models.KeyedRecord

	for _, kr := range logs.All() {
		if !models.HasDate(kr.Key, date) {
			continue
		}

		_, id, _ := models.SplitKey(kr.Key)

		if len(ids) > 0 && !slices.Contains(ids, id) {
			continue
		}

		out = append(out, kr)
	}

	return out
}

// delRecords deletes the given records. It requests confirmation before
// proceeding unless skipConfirm is set.
func delRecords(
	logs store.LogStore,
	records []models.KeyedRecord,
	entries []tracker.HistoryEntry,
	in io.Reader,
	out io.Writer,
	skipConfirm bool,
) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	if !skipConfirm {
		printRecords(out, entries)

		warning := pterm.Warning.Sprint(
			"The above records will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(out, warning)

		reader := bufio.NewReader(in)

		_, _ = reader.ReadString('\n')
	}

	for _, kr := range records {
		if err := logs.Delete(kr.Key); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Deleted %d records", len(records))

	return nil
}

// deleteAction handles the delete command which removes the records of a day.
func deleteAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	day, err := timeutil.FromStr(ctx.String("date"), e.now)
	if err != nil {
		return err
	}

	date := models.DateKey(day)
	records := recordsOn(e.logs, date, ctx.Args().Slice())

	entries := make([]tracker.HistoryEntry, 0, len(records))

	for _, kr := range records {
		_, id, _ := models.SplitKey(kr.Key)

		ex, ph, ok := e.prog.Find(id)
		if !ok {
			ph = &e.prog.Phases[0]
			ex.ID, ex.Name = id, id
		}

		entries = append(entries, tracker.HistoryEntry{
			Phase:    ph,
			Date:     date,
			Exercise: ex,
			Record:   kr.Record,
		})
	}

	return delRecords(
		e.logs,
		records,
		entries,
		config.Stdin,
		config.Stdout,
		ctx.Bool("yes"),
	)
}
