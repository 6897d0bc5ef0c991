package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/models/m_product"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
	"github.com/light-bringer/equiv-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, comm *committer.Committer) contracts.ProductRepository {
	return &ProductRepo{
		client:    client,
		committer: comm,
		model:     m_product.NewModel(),
	}
}

// GetByID resolves a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{id}, r.model.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return r.rowToDomain(row)
}

// GetByClientAndName resolves a product by owning client and exact name.
// Duplicate (client, name) rows are a data-integrity assumption, not a
// supported feature; the first row by id wins.
func (r *ProductRepo) GetByClientAndName(ctx context.Context, clientID int64, name string) (*domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(r.model.Columns()...).
		Where(query.Eq(m_product.ClientID, clientID)).
		Where(query.Eq(m_product.Name, name)).
		OrderBy(m_product.ProductID, query.Asc).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product by client and name: %w", err)
	}

	return r.rowToDomain(row)
}

// Insert writes a new product with a freshly allocated id and returns the
// id. The insert, the id allocation and any event mutations share one
// transaction.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product, events contracts.EventMuts) (int64, error) {
	var id int64

	err := r.committer.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		next, err := nextID(ctx, txn, m_product.TableName, m_product.ProductID)
		if err != nil {
			return err
		}

		count, err := txn.Update(ctx, r.model.InsertDML(next, product.ClientID(), product.Name()))
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
		if count == 0 {
			return domain.ErrNothingInserted
		}

		if events != nil {
			if err := txn.BufferWrite(events(next)); err != nil {
				return fmt.Errorf("failed to buffer product events: %w", err)
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

// rowToDomain converts a products row to a domain Product.
func (r *ProductRepo) rowToDomain(row *spanner.Row) (*domain.Product, error) {
	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return domain.ReconstructProduct(data.ProductID, data.ClientID, data.Name, data.CreatedAt), nil
}
