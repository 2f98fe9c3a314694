// Command storefront is the terminal front end for the E-Buy demo shop. Each
// subcommand corresponds to one page of the storefront; controllers return
// view models and this binary renders them.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/cart"
	"github.com/MahirAsef999/E-Buy/internal/config"
	"github.com/MahirAsef999/E-Buy/internal/controllers"
	"github.com/MahirAsef999/E-Buy/internal/session"
	"go.uber.org/zap"
)

const usage = `usage: storefront <command> [flags]

commands:
  products                      list the product catalog
  add -product ID [-qty N]      add a product to the cart
  cart                          show the cart
  cart-qty -product ID -qty N   change a line's quantity
  cart-remove -product ID       remove a line
  checkout [shipping flags]     place the order in the cart
  orders [-range 30|180|year|all]  list past orders
  login -email E -password P    sign in
  register [registration flags] create an account
  logout                        clear the local session
  account                       show account details
  account-set -field F -value V update one account field
  address                       show the cached address
  address-set [address flags]   update the cached address
  cards                         list saved payment methods
  card-add [card flags]         save a new card
  card-edit -id N [card flags]  update a saved card
  card-delete -id N             delete a saved card
  card-default                  show the default card
`

type app struct {
	cfg     config.Config
	log     *zap.Logger
	session *session.Store

	auth     *api.AuthClient
	carts    *api.CartClient
	orders   *api.OrderClient
	accounts *api.AccountClient
	payments *api.PaymentClient
	cards    *api.PaymentMethodClient

	in *bufio.Reader
}

func newApp(log *zap.Logger) *app {
	cfg := config.Load()
	store := session.NewStore(cfg.StateDir, log)
	client := api.NewClient(cfg.APIBaseURL, cfg.DemoToken, store, &http.Client{Timeout: cfg.HTTPTimeout}, log)

	return &app{
		cfg:      cfg,
		log:      log,
		session:  store,
		auth:     api.NewAuthClient(client),
		carts:    api.NewCartClient(client),
		orders:   api.NewOrderClient(client),
		accounts: api.NewAccountClient(client),
		payments: api.NewPaymentClient(client),
		cards:    api.NewPaymentMethodClient(client),
		in:       bufio.NewReader(os.Stdin),
	}
}

func main() {
	logger, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	a := newApp(logger)
	ctx := context.Background()

	var runErr error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "products":
		runErr = a.runProducts()
	case "add":
		runErr = a.runAdd(ctx, args)
	case "cart":
		runErr = a.runCart(ctx)
	case "cart-qty":
		runErr = a.runCartQty(ctx, args)
	case "cart-remove":
		runErr = a.runCartRemove(ctx, args)
	case "checkout":
		runErr = a.runCheckout(ctx, args)
	case "orders":
		runErr = a.runOrders(ctx, args)
	case "login":
		runErr = a.runLogin(ctx, args)
	case "register":
		runErr = a.runRegister(ctx, args)
	case "logout":
		runErr = a.runLogout()
	case "account":
		runErr = a.runAccount(ctx)
	case "account-set":
		runErr = a.runAccountSet(ctx, args)
	case "address":
		runErr = a.runAddress()
	case "address-set":
		runErr = a.runAddressSet(args)
	case "cards":
		runErr = a.runCards(ctx)
	case "card-add":
		runErr = a.runCardSubmit(ctx, args, false)
	case "card-edit":
		runErr = a.runCardSubmit(ctx, args, true)
	case "card-delete":
		runErr = a.runCardDelete(ctx, args)
	case "card-default":
		runErr = a.runCardDefault(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}

// confirm asks a yes/no question on the terminal, standing in for the
// browser confirm dialog.
func (a *app) confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printMessage(m controllers.Message) {
	if m.Text == "" {
		return
	}
	switch m.Kind {
	case controllers.KindError:
		fmt.Println("!!", m.Text)
	case controllers.KindSuccess:
		fmt.Println("ok", m.Text)
	default:
		fmt.Println("--", m.Text)
	}
}

func printFieldErrors(fe map[string]string) {
	for field, msg := range fe {
		fmt.Printf("!! %s: %s\n", field, msg)
	}
}

func printRedirect(page string) {
	if page != "" {
		fmt.Println("-> go to", page)
	}
}

func (a *app) runProducts() error {
	sc := controllers.NewStorefrontController(a.carts, a.log)
	for _, p := range sc.Products() {
		fmt.Printf("%-28s %8s  %s\n", p.ID, cart.FormatUSD(p.Price), p.ImageURL)
	}
	return nil
}

func (a *app) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 1, "quantity")
	fs.Parse(args)

	sc := controllers.NewStorefrontController(a.carts, a.log)
	printMessage(sc.AddToCart(ctx, *product, *qty).Message)
	return nil
}

func (a *app) cartController() *controllers.CartController {
	return controllers.NewCartController(cart.NewService(a.carts, a.log), a.log)
}

func printCart(v controllers.CartView) {
	printMessage(v.Message)
	if v.Empty || len(v.Rows) == 0 {
		return
	}
	for _, row := range v.Rows {
		fmt.Printf("%-28s x%-3d %8s\n", row.ProductID, row.Qty, cart.FormatUSD(row.Price*float64(row.Qty)))
	}
	fmt.Printf("subtotal %s  tax %s  total %s\n",
		cart.FormatUSD(v.Totals.Subtotal), cart.FormatUSD(v.Totals.Tax), cart.FormatUSD(v.Totals.Total))
}

func (a *app) runCart(ctx context.Context) error {
	printCart(a.cartController().View(ctx))
	return nil
}

func (a *app) runCartQty(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cart-qty", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 1, "new quantity")
	fs.Parse(args)

	view := a.cartController().ChangeQuantity(ctx, *product, *qty, func() bool {
		return a.confirm("Remove this item from your cart?")
	})
	printCart(view)
	return nil
}

func (a *app) runCartRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cart-remove", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	fs.Parse(args)

	printCart(a.cartController().Remove(ctx, *product))
	return nil
}

func (a *app) runCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email")
	address := fs.String("address", "", "shipping address")
	phone := fs.String("phone", "", "phone number")
	card := fs.String("card", "", "card number")
	expiry := fs.String("expiry", "", "card expiry MM/YY")
	cvv := fs.String("cvv", "", "card cvv")
	fs.Parse(args)

	cc := controllers.NewCheckoutController(a.carts, a.orders, a.payments, a.cards, a.session, a.log)

	summary := cc.Summary(ctx)
	printMessage(summary.Message)
	if summary.Empty {
		return nil
	}
	for _, line := range summary.Lines {
		fmt.Printf("%-28s x%-3d %8s\n", line.ProductID, line.Qty, cart.FormatUSD(line.LineTotal))
	}
	fmt.Printf("subtotal %s  tax %s  total %s\n",
		cart.FormatUSD(summary.Totals.Subtotal), cart.FormatUSD(summary.Totals.Tax), cart.FormatUSD(summary.Totals.Total))

	form := cc.Prefill(ctx, controllers.ShippingForm{
		FirstName:  *first,
		LastName:   *last,
		Email:      *email,
		Address:    *address,
		Phone:      *phone,
		CardNumber: *card,
		Expiry:     *expiry,
		CVV:        *cvv,
	})

	result := cc.PlaceOrder(ctx, form)
	printFieldErrors(result.FieldErrors)
	printMessage(result.Message)
	if result.OrderID != "" {
		fmt.Printf("order %s placed, total %s\n", result.OrderID, cart.FormatUSD(result.Total))
	}
	printRedirect(result.Redirect)
	return nil
}

func (a *app) runOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	rng := fs.String("range", cart.RangeAll, "30, 180, year or all")
	fs.Parse(args)

	oc := controllers.NewOrderHistoryController(a.orders, a.session, a.log)
	loaded := oc.Load(ctx)
	printMessage(loaded.Message)
	printRedirect(loaded.Redirect)
	if loaded.Redirect != "" || loaded.Message.Kind == controllers.KindError {
		return nil
	}

	view := oc.View(loaded.Orders, *rng)
	if view.Empty {
		fmt.Println("-- No orders in this period.")
		return nil
	}
	for _, s := range view.Summaries {
		fmt.Printf("order %s  %s  %s  %s\n", s.OrderID, s.Date, s.Status, cart.FormatUSD(s.Total))
		for _, line := range s.Lines {
			fmt.Printf("  %-26s x%-3d %8s  %s\n", line.Name, line.Qty, cart.FormatUSD(line.LineTotal), line.ImageURL)
		}
	}
	return nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	lc := controllers.NewLoginController(a.auth, a.session, a.log)
	if lc.AlreadySignedIn() {
		fmt.Println("-- already signed in")
		printRedirect(controllers.PageMain)
		return nil
	}

	result := lc.Login(ctx, controllers.LoginRequest{Email: *email, Password: *password})
	printFieldErrors(result.FieldErrors)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	return nil
}

func (a *app) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	confirmPw := fs.String("confirm", "", "password confirmation")
	address := fs.String("address", "", "shipping address (optional)")
	fs.Parse(args)

	rc := controllers.NewRegisterController(a.auth, a.log)
	result := rc.Register(ctx, controllers.RegisterRequest{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *confirmPw,
		Address:         *address,
	})
	printFieldErrors(result.FieldErrors)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	return nil
}

func (a *app) runLogout() error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Println("ok signed out")
	return nil
}

func (a *app) runAccount(ctx context.Context) error {
	ac := controllers.NewAccountController(a.accounts, a.session, a.log)
	result := ac.Load(ctx)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	if result.Redirect != "" || result.Message.Kind == controllers.KindError {
		return nil
	}
	fmt.Println("first name:", result.View.FirstName)
	fmt.Println("last name: ", result.View.LastName)
	fmt.Println("email:     ", result.View.Email)
	fmt.Println("phone:     ", result.View.ShippingPhone)
	return nil
}

func (a *app) runAccountSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("account-set", flag.ExitOnError)
	field := fs.String("field", "", "first_name, last_name, email, shipping_phone or password")
	value := fs.String("value", "", "new value")
	fs.Parse(args)

	ac := controllers.NewAccountController(a.accounts, a.session, a.log)
	result := ac.UpdateField(ctx, *field, *value)
	printFieldErrors(result.FieldErrors)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	return nil
}

func (a *app) runAddress() error {
	ac := controllers.NewAddressController(a.session, a.log)
	view := ac.Load()
	fmt.Println("street:  ", view.Address.Street)
	fmt.Println("city:    ", view.Address.City)
	if view.NonUS {
		fmt.Println("province:", view.Address.Province)
		fmt.Println("country: ", view.Address.Country)
	} else {
		fmt.Println("state:   ", view.Address.State)
	}
	fmt.Println("zip:     ", view.Address.Zip)
	return nil
}

func (a *app) runAddressSet(args []string) error {
	fs := flag.NewFlagSet("address-set", flag.ExitOnError)
	street := fs.String("street", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "US state code, or NON_US")
	province := fs.String("province", "", "province (non-US only)")
	country := fs.String("country", "", "country (non-US only)")
	zip := fs.String("zip", "", "zip or postal code")
	fs.Parse(args)

	ac := controllers.NewAddressController(a.session, a.log)
	result := ac.Save(session.Address{
		Street:   *street,
		City:     *city,
		State:    *state,
		Province: *province,
		Country:  *country,
		Zip:      *zip,
	})
	printMessage(result.Message)
	return nil
}

func (a *app) runCards(ctx context.Context) error {
	pc := controllers.NewPaymentMethodsController(a.cards, a.session, a.log)
	result := pc.List(ctx)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	for _, m := range result.Methods {
		mark := " "
		if m.IsDefault {
			mark = "*"
		}
		fmt.Printf("%s %3d  %-12s **** %s  exp %s  %s\n",
			mark, m.ID, m.CardType, m.LastFourDigits, m.ExpiryDate, m.CardholderName)
	}
	return nil
}

func (a *app) runCardSubmit(ctx context.Context, args []string, editing bool) error {
	name := "card-add"
	if editing {
		name = "card-edit"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.Int("id", 0, "payment method id (edit only)")
	cardType := fs.String("type", "", "card type, e.g. Visa")
	holder := fs.String("name", "", "cardholder name")
	number := fs.String("number", "", "card number")
	expiry := fs.String("expiry", "", "expiry MM/YY")
	cvv := fs.String("cvv", "", "cvv")
	zip := fs.String("zip", "", "billing zip")
	isDefault := fs.Bool("default", false, "make this the default card")
	fs.Parse(args)

	pc := controllers.NewPaymentMethodsController(a.cards, a.session, a.log)

	var edit *controllers.EditSession
	if editing {
		es, msg, err := pc.BeginEdit(ctx, *id)
		if err != nil {
			printMessage(msg)
			return nil
		}
		edit = &es
	}

	in := api.PaymentMethodInput{
		CardType:       *cardType,
		CardholderName: *holder,
		CardNumber:     controllers.FormatCardNumber(*number),
		ExpiryDate:     controllers.FormatExpiryInput(*expiry),
		CVV:            *cvv,
		BillingZip:     *zip,
		IsDefault:      *isDefault,
	}
	if edit != nil {
		// Untouched flags fall back to the stored card.
		if *cardType == "" {
			in.CardType = edit.Form.CardType
		}
		if *holder == "" {
			in.CardholderName = edit.Form.CardholderName
		}
		if *number == "" {
			in.CardNumber = edit.Form.CardNumber
		}
		if *expiry == "" {
			in.ExpiryDate = edit.Form.ExpiryDate
		}
		if *zip == "" {
			in.BillingZip = edit.Form.BillingZip
		}
	}

	result := pc.Submit(ctx, edit, in)
	printFieldErrors(result.FieldErrors)
	printMessage(result.Message)
	printRedirect(result.Redirect)
	return nil
}

func (a *app) runCardDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("card-delete", flag.ExitOnError)
	id := fs.Int("id", 0, "payment method id")
	fs.Parse(args)

	pc := controllers.NewPaymentMethodsController(a.cards, a.session, a.log)
	result := pc.Delete(ctx, *id, func() bool {
		return a.confirm("Delete this payment method?")
	})
	printMessage(result.Message)
	return nil
}

func (a *app) runCardDefault(ctx context.Context) error {
	m, err := a.cards.Default(ctx)
	if err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			fmt.Println("-- no default payment method set")
			return nil
		}
		return err
	}
	fmt.Printf("%d  %-12s **** %s  exp %s  %s\n",
		m.ID, m.CardType, m.LastFourDigits, m.ExpiryDate, m.CardholderName)
	return nil
}
