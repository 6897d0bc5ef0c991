package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/models/m_client"
	"github.com/light-bringer/equiv-service/internal/models/m_equivalence"
	"github.com/light-bringer/equiv-service/internal/models/m_product"
	"github.com/light-bringer/equiv-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// ListClients returns all clients ordered by id ascending.
func (rm *ReadModelImpl) ListClients(ctx context.Context) ([]*contracts.ClientDTO, error) {
	stmt := query.From(m_client.TableName).
		Select(m_client.ClientID, m_client.Code, m_client.Name, m_client.CreatedAt).
		OrderBy(m_client.ClientID, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var clients []*contracts.ClientDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate clients: %w", err)
		}

		var data m_client.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse client: %w", err)
		}

		clients = append(clients, &contracts.ClientDTO{
			ClientID:  data.ClientID,
			Code:      data.Code,
			Name:      data.Name,
			CreatedAt: data.CreatedAt,
		})
	}

	return clients, nil
}

// ListProducts returns all products ordered by (client_id, product_id).
func (rm *ReadModelImpl) ListProducts(ctx context.Context) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.ClientID, m_product.Name, m_product.CreatedAt).
		OrderBy(m_product.ClientID, query.Asc).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	return rm.queryProducts(ctx, stmt)
}

// ListProductsByClient returns one client's products ordered by id.
func (rm *ReadModelImpl) ListProductsByClient(ctx context.Context, clientID int64) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.ClientID, m_product.Name, m_product.CreatedAt).
		Where(query.Eq(m_product.ClientID, clientID)).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	return rm.queryProducts(ctx, stmt)
}

// ListEquivalents returns every product recorded as equivalent to the given
// product. The stored pair may carry the product on either side, so the join
// picks whichever end is the other product.
func (rm *ReadModelImpl) ListEquivalents(ctx context.Context, productID int64) ([]*contracts.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT p." + m_product.ProductID + ", p." + m_product.ClientID + ", p." + m_product.Name + ", p." + m_product.CreatedAt + " " +
			"FROM " + m_equivalence.TableName + " e " +
			"JOIN " + m_product.TableName + " p ON p." + m_product.ProductID + " = " +
			"IF(e." + m_equivalence.ProductIDA + " = @id, e." + m_equivalence.ProductIDB + ", e." + m_equivalence.ProductIDA + ") " +
			"WHERE e." + m_equivalence.ProductIDA + " = @id OR e." + m_equivalence.ProductIDB + " = @id " +
			"ORDER BY p." + m_product.ProductID,
		Params: map[string]interface{}{
			"id": productID,
		},
	}

	return rm.queryProducts(ctx, stmt)
}

// FindCandidates returns same-name products owned by other clients. This is
// a pure name scan: it never consults the equivalences table, so a product
// that already has a confirmed equivalence still shows up as a candidate.
func (rm *ReadModelImpl) FindCandidates(ctx context.Context, clientID int64, name string) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.ClientID, m_product.Name, m_product.CreatedAt).
		Where(query.Eq(m_product.Name, name)).
		Where(query.Ne(m_product.ClientID, clientID)).
		OrderBy(m_product.ClientID, query.Asc).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	return rm.queryProducts(ctx, stmt)
}

// queryProducts executes a statement yielding products rows and collects the
// DTOs.
func (rm *ReadModelImpl) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*contracts.ProductDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*contracts.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, &contracts.ProductDTO{
			ProductID: data.ProductID,
			ClientID:  data.ClientID,
			Name:      data.Name,
			CreatedAt: data.CreatedAt,
		})
	}

	return products, nil
}
