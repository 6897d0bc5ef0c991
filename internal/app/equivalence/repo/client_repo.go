package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/models/m_client"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
	"github.com/light-bringer/equiv-service/internal/pkg/query"
)

// ClientRepo implements ClientRepository for Spanner.
type ClientRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_client.Model
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(client *spanner.Client, comm *committer.Committer) contracts.ClientRepository {
	return &ClientRepo{
		client:    client,
		committer: comm,
		model:     m_client.NewModel(),
	}
}

// GetByCode resolves a client by its unique external code (exact match).
func (r *ClientRepo) GetByCode(ctx context.Context, code string) (*domain.Client, error) {
	stmt := query.From(m_client.TableName).
		Select(r.model.Columns()...).
		Where(query.Eq(m_client.Code, code)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read client by code: %w", err)
	}

	return r.rowToDomain(row)
}

// GetByID resolves a client by id.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	row, err := r.client.Single().ReadRow(ctx, m_client.TableName, spanner.Key{id}, r.model.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to read client: %w", err)
	}

	return r.rowToDomain(row)
}

// Insert writes a new client with a freshly allocated id and returns the id.
// The insert, the id allocation and any event mutations share one
// transaction.
func (r *ClientRepo) Insert(ctx context.Context, client *domain.Client, events contracts.EventMuts) (int64, error) {
	var id int64

	err := r.committer.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		next, err := nextID(ctx, txn, m_client.TableName, m_client.ClientID)
		if err != nil {
			return err
		}

		count, err := txn.Update(ctx, r.model.InsertDML(next, client.Code(), client.Name()))
		if err != nil {
			return fmt.Errorf("failed to insert client: %w", err)
		}
		if count == 0 {
			return domain.ErrNothingInserted
		}

		if events != nil {
			if err := txn.BufferWrite(events(next)); err != nil {
				return fmt.Errorf("failed to buffer client events: %w", err)
			}
		}

		id = next
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// rowToDomain converts a clients row to a domain Client.
func (r *ClientRepo) rowToDomain(row *spanner.Row) (*domain.Client, error) {
	var data m_client.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse client: %w", err)
	}

	return domain.ReconstructClient(data.ClientID, data.Code, data.Name, data.CreatedAt), nil
}
