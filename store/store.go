// Package store is the record-store boundary: per-user named JSON documents
// with load/save semantics, a file backend for the CLI and a Redis backend
// for the server, plus the debounced write coalescer that stands between
// in-memory mutations and the store.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsight/finsight"
)

// Collection document names. Each user owns one document per name.
const (
	Transactions = "transactions"
	Investments  = "investments"
	Debts        = "debts"
	Settings     = "settings"
)

// Store is the per-user document interface. Load reports ok=false when the
// document does not exist yet; that is not an error. Save overwrites the
// whole document, last write wins.
type Store interface {
	Load(ctx context.Context, user, name string) (doc []byte, ok bool, err error)
	Save(ctx context.Context, user, name string, doc []byte) error
}

// envelope is the persisted shape of the three record collections. Settings
// are stored flat, with only the timestamp added.
type envelope struct {
	Items     json.RawMessage `json:"items"`
	UpdatedAt int64           `json:"updatedAt"`
}

type settingsDoc struct {
	finsight.Settings
	UpdatedAt int64 `json:"updatedAt"`
}

func now() int64 { return time.Now().UnixMilli() }

// EncodeCollection wraps items in the {items, updatedAt} envelope.
func EncodeCollection(items any) ([]byte, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("cannot encode collection: %w", err)
	}
	return json.Marshal(envelope{Items: raw, UpdatedAt: now()})
}

// EncodeSettings marshals settings flat.
func EncodeSettings(s finsight.Settings) ([]byte, error) {
	return json.Marshal(settingsDoc{Settings: s, UpdatedAt: now()})
}

// decodeItems unwraps a collection envelope into out. A document that is a
// bare array (no envelope) is accepted as well.
func decodeItems(doc []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(doc, &env); err == nil && env.Items != nil {
		return json.Unmarshal(env.Items, out)
	}
	return json.Unmarshal(doc, out)
}

// LoadBook assembles a user's book from the four documents. A collection
// whose document was never written starts from the sample records, the way
// a brand-new account does; seeded reports whether that happened so the
// caller can persist the seeds. A cleared collection is a written empty
// document and is never re-seeded.
func LoadBook(ctx context.Context, st Store, user string) (b *finsight.Book, seeded bool, err error) {
	b = finsight.NewBook()

	load := func(name string, out any) (bool, error) {
		doc, ok, err := st.Load(ctx, user, name)
		if err != nil {
			return false, fmt.Errorf("cannot load %s: %w", name, err)
		}
		if !ok {
			return false, nil
		}
		if err := decodeItems(doc, out); err != nil {
			return false, fmt.Errorf("corrupt %s document: %w", name, err)
		}
		return true, nil
	}

	ok, err := load(Transactions, &b.Transactions)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		b.Transactions = finsight.SampleTransactions()
		seeded = true
	}
	ok, err = load(Investments, &b.Investments)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		b.Investments = finsight.SampleInvestments()
		seeded = true
	}
	ok, err = load(Debts, &b.Debts)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		b.Debts = finsight.SampleDebts()
		seeded = true
	}

	doc, ok, err := st.Load(ctx, user, Settings)
	if err != nil {
		return nil, false, fmt.Errorf("cannot load settings: %w", err)
	}
	if ok {
		var sd settingsDoc
		if err := json.Unmarshal(doc, &sd); err != nil {
			return nil, false, fmt.Errorf("corrupt settings document: %w", err)
		}
		if sd.View != "" {
			b.Settings.View = sd.View
		}
		if sd.ActiveTab != "" {
			b.Settings.ActiveTab = sd.ActiveTab
		}
	}
	return b, seeded, nil
}

// SaveCollection writes one record collection through the envelope.
func SaveCollection(ctx context.Context, st Store, user, name string, items any) error {
	doc, err := EncodeCollection(items)
	if err != nil {
		return err
	}
	return st.Save(ctx, user, name, doc)
}

// SaveBook writes all four documents of a book. The three collections are
// written first so a settings failure cannot shadow a data failure.
func SaveBook(ctx context.Context, st Store, user string, b *finsight.Book) error {
	if err := SaveCollection(ctx, st, user, Transactions, b.Transactions); err != nil {
		return err
	}
	if err := SaveCollection(ctx, st, user, Investments, b.Investments); err != nil {
		return err
	}
	if err := SaveCollection(ctx, st, user, Debts, b.Debts); err != nil {
		return err
	}
	doc, err := EncodeSettings(b.Settings)
	if err != nil {
		return err
	}
	return st.Save(ctx, user, Settings, doc)
}
