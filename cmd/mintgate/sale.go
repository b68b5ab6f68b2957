package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mintgate-xyz/go-mintgate/calllog"
	"github.com/mintgate-xyz/go-mintgate/chainsim"
	"github.com/mintgate-xyz/go-mintgate/contract"
	"github.com/mintgate-xyz/go-mintgate/state"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

// buildLogger returns a console logger, silenced unless verbose.
func buildLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// journalPath derives the journal file next to the store file.
func journalPath(storePath string) string {
	return strings.TrimSuffix(storePath, ".db") + ".journal"
}

// sale is one opened sale: the contract bound to a staged view of the
// persistent store, and a chain simulation rebuilt from the journal.
type sale struct {
	contract *contract.Contract
	sim      *chainsim.Module
	store    *state.SQLiteStore
	staged   *state.StagedStore
	path     string
}

// openSale opens the persistent store and binds a contract to a chain
// simulation rebuilt by replaying the journal's recorded instruction
// batches. The contract writes through a staging layer so a call's
// store writes land only once its emitted batch has applied.
func openSale(storePath, address string, verbose bool) (*sale, error) {
	store, err := state.NewSQLiteStore(storePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sim := chainsim.New(address)
	if err := replayJournal(sim, journalPath(storePath)); err != nil {
		store.Close()
		return nil, err
	}

	staged := state.NewStagedStore(store)
	c := contract.New(address, staged, sim, contract.WithLogger(buildLogger(verbose)))
	return &sale{contract: c, sim: sim, store: store, staged: staged, path: storePath}, nil
}

func (s *sale) Close() error { return s.store.Close() }

// finish settles one mutating call. On success the emitted batch is
// applied to the simulation and the staged store writes are committed;
// a rejected call, or a batch the simulation refuses, is journaled
// with its error and its staged writes are discarded, so replay skips
// it and the store stays consistent with the applied history.
func (s *sale) finish(ctx context.Context, method, sender string, resp *contract.Response, callErr error) error {
	if callErr != nil {
		s.staged.Discard()
	} else if applyErr := s.sim.ApplyBatch(resp.Messages); applyErr != nil {
		s.staged.Discard()
		callErr = fmt.Errorf("apply batch: %w", applyErr)
	} else if err := s.staged.Commit(ctx); err != nil {
		return err
	}

	if err := appendRecord(s.path, method, sender, resp, callErr); err != nil {
		return err
	}
	return callErr
}

// replayJournal applies every successful record's instruction batch to
// the simulation, in journal order. A missing journal file is an empty
// history.
func replayJournal(sim *chainsim.Module, path string) error {
	records, err := calllog.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, rec := range records {
		if rec.Error != "" {
			continue
		}
		msgs := make([]wire.Msg, 0, len(rec.Messages))
		for _, m := range rec.Messages {
			msg, err := chainsim.DecodeMsg(m.Kind, m.Body)
			if err != nil {
				return fmt.Errorf("replay record %s: %w", rec.ID, err)
			}
			msgs = append(msgs, msg)
		}
		if err := sim.ApplyBatch(msgs); err != nil {
			return fmt.Errorf("replay record %s: %w", rec.ID, err)
		}
	}
	return nil
}

// appendRecord journals one call outcome.
func appendRecord(storePath, method, sender string, resp *contract.Response, callErr error) error {
	j, err := calllog.Open(journalPath(storePath))
	if err != nil {
		return err
	}
	defer j.Close()

	attrs := map[string]string{}
	var msgs []wire.Msg
	if resp != nil {
		for _, a := range resp.Attributes {
			attrs[a.Key] = a.Value
		}
		msgs = resp.Messages
	}
	rec, err := calllog.NewRecord(method, sender, attrs, msgs, callErr)
	if err != nil {
		return err
	}
	return j.Append(rec)
}

// readMsgArg treats the argument as inline JSON when it starts with a
// brace, and as a file path otherwise.
func readMsgArg(arg string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		return []byte(arg), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return b, nil
}
