package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/models/m_equivalence"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
)

// EquivalenceRepo implements EquivalenceRepository for Spanner.
//
// Both methods expect the pair pre-normalized (a < b); only the direct
// orientation is ever read or written. The primary key on
// (product_id_a, product_id_b) makes a duplicate insert fail even if two
// callers race between the existence check and the insert.
type EquivalenceRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_equivalence.Model
}

// NewEquivalenceRepo creates a new EquivalenceRepo.
func NewEquivalenceRepo(client *spanner.Client, comm *committer.Committer) contracts.EquivalenceRepository {
	return &EquivalenceRepo{
		client:    client,
		committer: comm,
		model:     m_equivalence.NewModel(),
	}
}

// Exists reports whether the pair (a, b) is recorded, via a single
// direct-order key lookup.
func (r *EquivalenceRepo) Exists(ctx context.Context, a, b int64) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_equivalence.TableName, spanner.Key{a, b}, []string{m_equivalence.ProductIDA})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check equivalence existence: %w", err)
	}
	return true, nil
}

// Insert writes the pair (a, b) as given, with any event mutations in the
// same transaction.
func (r *EquivalenceRepo) Insert(ctx context.Context, a, b int64, events []*spanner.Mutation) error {
	return r.committer.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		count, err := txn.Update(ctx, r.model.InsertDML(a, b))
		if err != nil {
			return fmt.Errorf("failed to insert equivalence: %w", err)
		}
		if count == 0 {
			return domain.ErrNothingInserted
		}

		if len(events) > 0 {
			if err := txn.BufferWrite(events); err != nil {
				return fmt.Errorf("failed to buffer equivalence events: %w", err)
			}
		}

		return nil
	})
}
