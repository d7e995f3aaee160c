package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"spartoo_api/internal/spartoo/business/models"
	"spartoo_api/internal/spartoo/business/services/documents"
	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/metrics"
)

// Endpoints of the marketplace web service, under <base>/mp/<name>.php.
const (
	EndpointImportProducts     = "xml_import_products"
	EndpointUpdateStock        = "xml_maj_stock"
	EndpointUpdateStockBatch   = "xml_maj_stock_batch"
	EndpointExportProducts     = "xml_export_products"
	EndpointCheckStatus        = "xml_check_status_products"
	EndpointExportOrders       = "xml_export_orders"
	EndpointUpdateOrder        = "xml_maj_orders"
	EndpointExportDeliveryNote = "xml_export_bl"
	EndpointExportReturns      = "xml_export_returns"
	EndpointUpdateReturn       = "xml_maj_returns"
)

const ordersDateLayout = "2006-01-02:15:04:05"

// Client talks to the Spartoo marketplace API on behalf of one partner.
// Answers are returned as loose XML trees.
type Client struct {
	*BaseClient
}

func NewClient(partner string, opts ...Option) (*Client, error) {
	auth := NewPartnerAuth(partner)
	if auth == nil {
		return nil, ErrNoPartner
	}
	return &Client{BaseClient: newBaseClient(auth, opts...)}, nil
}

func (c *Client) document(kind string, root *xmlnode.Node) (string, error) {
	data, err := xmlnode.Document(root)
	if err != nil {
		return "", fmt.Errorf("failed to build %s document: %w", kind, err)
	}
	metrics.RecordDocument(kind)
	return string(data), nil
}

// ImportProducts creates or updates listings.
func (c *Client) ImportProducts(ctx context.Context, listings []models.Listing, forceDescription, forceOverwrite bool) (*xmlnode.Node, error) {
	doc, err := c.document("import", documents.Import(listings...))
	if err != nil {
		return nil, err
	}
	return c.call(ctx, EndpointImportProducts, params(
		"xml", doc,
		"force_description", flag(forceDescription),
		"force_overwrite", flag(forceOverwrite),
	))
}

// UpdateStock sets the quantity of one size.
func (c *Client) UpdateStock(ctx context.Context, reference, sizeReference string, quantity int) (*xmlnode.Node, error) {
	v := url.Values{}
	v.Set("reference_partenaire", reference)
	v.Set("products_size_reference", sizeReference)
	v.Set("products_quantity", strconv.Itoa(quantity))
	return c.call(ctx, EndpointUpdateStock, v)
}

// UpdateStockBatch sends the stock of several products at once.
func (c *Client) UpdateStockBatch(ctx context.Context, products []*models.Product) (*xmlnode.Node, error) {
	doc, err := c.document("batch_stock", documents.BatchStock(products...))
	if err != nil {
		return nil, err
	}
	return c.call(ctx, EndpointUpdateStockBatch, params("xml", doc))
}

// ExportProducts lists the partner catalog, or a single product when
// reference is set.
func (c *Client) ExportProducts(ctx context.Context, reference string) (*xmlnode.Node, error) {
	return c.call(ctx, EndpointExportProducts, params("reference_partenaire", reference))
}

func (c *Client) CheckStatusProducts(ctx context.Context, products []*models.Product) (*xmlnode.Node, error) {
	doc, err := c.document("status_check", documents.StatusCheck(products...))
	if err != nil {
		return nil, err
	}
	return c.call(ctx, EndpointCheckStatus, params("xml", doc))
}

// OrdersQuery selects orders by date and/or order id.
type OrdersQuery struct {
	Date    time.Time
	OrderID string
	Status  int
}

func (c *Client) ExportOrders(ctx context.Context, q OrdersQuery) (*xmlnode.Node, error) {
	if q.Date.IsZero() && q.OrderID == "" {
		return nil, &MissingArgumentError{Params: []string{"date", "oID"}}
	}
	date := ""
	if !q.Date.IsZero() {
		date = q.Date.Format(ordersDateLayout)
	}
	return c.call(ctx, EndpointExportOrders, params(
		"date", date,
		"oID", q.OrderID,
		"statut", itoa(q.Status),
	))
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, status int, trackingNumber string) (*xmlnode.Node, error) {
	return c.call(ctx, EndpointUpdateOrder, params(
		"oID", orderID,
		"statut", itoa(status),
		"tracking_number", trackingNumber,
	))
}

// ExportDeliveryNote requests the delivery note (BL) of a product of an order.
func (c *Client) ExportDeliveryNote(ctx context.Context, orderID string, p *models.Product) (*xmlnode.Node, error) {
	doc, err := c.document("delivery_note", documents.DeliveryNote(orderID, p))
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("xml", doc)
	return c.call(ctx, EndpointExportDeliveryNote, v)
}

// ReturnsQuery selects returns by date, order id and/or return id.
type ReturnsQuery struct {
	Date     time.Time
	OrderID  string
	ReturnID string
	Status   int
}

func (c *Client) ExportReturns(ctx context.Context, q ReturnsQuery) (*xmlnode.Node, error) {
	if q.Date.IsZero() && q.OrderID == "" && q.ReturnID == "" {
		return nil, &MissingArgumentError{Params: []string{"date", "oID", "rID"}}
	}
	date := ""
	if !q.Date.IsZero() {
		date = strconv.FormatInt(q.Date.Unix(), 10)
	}
	return c.call(ctx, EndpointExportReturns, params(
		"date", date,
		"oID", q.OrderID,
		"rID", q.ReturnID,
		"statut", itoa(q.Status),
	))
}

// ReturnUpdate changes the status of a return and may attach a label.
type ReturnUpdate struct {
	ReturnID  string
	Status    int
	LabelLink string
	LabelFile string
}

func (c *Client) UpdateReturn(ctx context.Context, u ReturnUpdate) (*xmlnode.Node, error) {
	return c.call(ctx, EndpointUpdateReturn, params(
		"rID", u.ReturnID,
		"statut", itoa(u.Status),
		"label_link", u.LabelLink,
		"label_file", u.LabelFile,
	))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return ""
}

func itoa(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
