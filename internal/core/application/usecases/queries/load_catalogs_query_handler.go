package queries

import (
	"context"

	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// MsgReferenceLoadFailed is reported when a catalog fetch fails without a reason.
const MsgReferenceLoadFailed = "Error cargando datos base"

// LoadCatalogsQueryHandler fetches the three catalogs concurrently and joins them.
// The result is all or nothing: the first failure cancels the others and is reported
// as *errs.ReferenceLoadError.
type LoadCatalogsQueryHandler struct {
	catalogs ports.CatalogGateway
}

func NewLoadCatalogsQueryHandler(catalogs ports.CatalogGateway) LoadCatalogsQueryHandler {
	return LoadCatalogsQueryHandler{catalogs: catalogs}
}

// Handle returns catalogs with inactive brackets removed and the overflow bracket appended.
func (h LoadCatalogsQueryHandler) Handle(ctx context.Context, query LoadCatalogsQuery) (catalog.Catalogs, error) {
	if err := query.Validate(); err != nil {
		return catalog.Catalogs{}, err
	}

	var (
		addresses    []catalog.Address
		packageTypes []catalog.PackageType
		statuses     []catalog.StatusOption
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		addresses, err = h.catalogs.ListAddresses(gctx, query.Token(), query.AddressScope())
		return err
	})
	g.Go(func() error {
		var err error
		packageTypes, err = h.catalogs.ListPackageTypes(gctx, query.Token())
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = h.catalogs.ListStatusOptions(gctx, query.Token())
		return err
	})

	if err := g.Wait(); err != nil {
		return catalog.Catalogs{}, errs.NewReferenceLoadError(err, MsgReferenceLoadFailed)
	}

	return catalog.NewCatalogs(addresses, packageTypes, statuses), nil
}
