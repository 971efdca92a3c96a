package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"desi-beats/config"
	"desi-beats/storefront/internal/apiclient"
	"desi-beats/storefront/internal/cart"
	"desi-beats/storefront/internal/checkout"
	"desi-beats/storefront/internal/domain"

	"github.com/shopspring/decimal"
)

const usage = `usage: storefront <command> [arguments]

commands:
  categories                       list menu categories
  menu [-category slug] [-featured] list menu items
  add <menu-item-id>               add one of an item to the cart
  remove <menu-item-id>            drop an item from the cart
  set <menu-item-id> <quantity>    set an item's quantity (0 removes it)
  cart                             show the cart
  clear                            empty the cart
  checkout -name N -phone P -type delivery|pickup [-address A]
  order <order-id>                 show an order
`

type catalogAPI interface {
	checkout.OrderCreator
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListMenuItems(ctx context.Context, categoryID string, featuredOnly bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	QRCodeURL(orderID string) string
	ReceiptURL(orderID string) string
}

type app struct {
	api   catalogAPI
	store cart.Store
	out   io.Writer
}

var errUsage = errors.New("invalid usage")

func main() {
	cfg := config.LoadStorefront()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		api:   apiclient.New(cfg.APIBaseURL, nil),
		store: cart.NewFileStore(cfg.CartDir),
		out:   os.Stdout,
	}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Printf("[storefront] %v", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "categories":
		return a.categories(ctx)
	case "menu":
		return a.menu(ctx, rest)
	case "add":
		if len(rest) != 1 {
			return errUsage
		}
		return a.add(ctx, rest[0])
	case "remove":
		if len(rest) != 1 {
			return errUsage
		}
		return a.withCart(func(c *cart.Cart) error { return c.RemoveItem(rest[0]) })
	case "set":
		if len(rest) != 2 {
			return errUsage
		}
		qty, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("quantity %q: %w", rest[1], errUsage)
		}
		return a.withCart(func(c *cart.Cart) error { return c.UpdateQuantity(rest[0], qty) })
	case "cart":
		return a.withCart(func(c *cart.Cart) error { return nil })
	case "clear":
		return a.withCart(func(c *cart.Cart) error { return c.Clear() })
	case "checkout":
		return a.checkout(ctx, rest)
	case "order":
		if len(rest) != 1 {
			return errUsage
		}
		return a.order(ctx, rest[0])
	default:
		return errUsage
	}
}

func (a *app) categories(ctx context.Context) error {
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Slug, c.Name, c.Description)
	}
	return tw.Flush()
}

func (a *app) menu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	slug := fs.String("category", "", "category slug")
	featured := fs.Bool("featured", false, "featured items only")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	categoryID := ""
	if *slug != "" {
		c, err := a.api.GetCategoryBySlug(ctx, *slug)
		if err != nil {
			return err
		}
		categoryID = c.ID
	}
	items, err := a.api.ListMenuItems(ctx, categoryID, *featured)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\t")
	for _, it := range items {
		note := ""
		if !it.Available {
			note = "(unavailable)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.ID, it.Name, price(decimal.NewFromFloat(it.Price)), note)
	}
	return tw.Flush()
}

func (a *app) add(ctx context.Context, id string) error {
	item, err := a.api.GetMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if !item.Available {
		return fmt.Errorf("%s is currently unavailable", item.Name)
	}
	return a.withCart(func(c *cart.Cart) error { return c.AddItem(*item) })
}

// withCart loads the cart, applies fn and prints the result.
func (a *app) withCart(fn func(c *cart.Cart) error) error {
	c, err := cart.Load(a.store)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	a.printCart(c)
	return nil
}

func (a *app) printCart(c *cart.Cart) {
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tQTY\tPRICE")
	for _, it := range c.Items() {
		line := decimal.NewFromFloat(it.MenuItem.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.MenuItem.ID, it.MenuItem.Name, it.Quantity, price(line))
	}
	fmt.Fprintf(tw, "\tTotal (%d items)\t\t%s\n", c.TotalItems(), price(c.TotalPrice()))
	tw.Flush()
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var d checkout.Details
	var deliveryType string
	fs.StringVar(&d.CustomerName, "name", "", "customer name")
	fs.StringVar(&d.CustomerPhone, "phone", "", "phone number")
	fs.StringVar(&d.CustomerAddress, "address", "", "delivery address")
	fs.StringVar(&deliveryType, "type", string(domain.DeliveryTypeDelivery), "delivery or pickup")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	d.DeliveryType = domain.DeliveryType(deliveryType)

	c, err := cart.Load(a.store)
	if err != nil {
		return err
	}
	order, err := checkout.Submit(ctx, a.api, c, d)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order placed! Your order id is %s\n", order.ID)
	fmt.Fprintf(a.out, "Total: %s (%s)\n", price(decimal.NewFromFloat(order.TotalAmount)), order.DeliveryType)
	fmt.Fprintf(a.out, "QR code: %s\nReceipt: %s\n", a.api.QRCodeURL(order.ID), a.api.ReceiptURL(order.ID))
	return nil
}

func (a *app) order(ctx context.Context, id string) error {
	order, err := a.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order %s\nStatus: %s\nPlaced: %s\nCustomer: %s (%s)\n",
		order.ID, order.Status, order.CreatedAt.Local().Format("2006-01-02 15:04"), order.CustomerName, order.CustomerPhone)
	if order.CustomerAddress != "" {
		fmt.Fprintf(a.out, "Address: %s\n", order.CustomerAddress)
	}
	fmt.Fprintf(a.out, "Total: %s (%s)\n", price(decimal.NewFromFloat(order.TotalAmount)), order.DeliveryType)
	return nil
}

func price(d decimal.Decimal) string {
	return "Rs. " + d.Round(2).String()
}
