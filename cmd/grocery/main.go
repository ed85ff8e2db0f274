// Command grocery is the interactive store simulator. It drives the catalog,
// cart and checkout services through a terminal menu, with an in-memory
// catalog seeded at startup and a file-backed account store.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	catalogapp "github.com/wyfcoding/groceryplatform/internal/catalog/application"
	catalogmemory "github.com/wyfcoding/groceryplatform/internal/catalog/infrastructure/persistence/memory"
	inventorydomain "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
	orderapp "github.com/wyfcoding/groceryplatform/internal/order/application"
	ordermemory "github.com/wyfcoding/groceryplatform/internal/order/infrastructure/persistence/memory"
	"github.com/wyfcoding/groceryplatform/internal/order/infrastructure/messaging"
	userapp "github.com/wyfcoding/groceryplatform/internal/user/application"
	userdomain "github.com/wyfcoding/groceryplatform/internal/user/domain"
	userfile "github.com/wyfcoding/groceryplatform/internal/user/infrastructure/persistence/file"
)

var categories = []string{"Dairy", "Snacks", "Fruits", "Vegetables"}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/grocery/config.toml", "path to config file")
	flag.Parse()

	viper.SetConfigFile(configPath)
	viper.SetDefault("users_file", "users.txt")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	// Prompts go to stdout; keep the log stream out of the menu.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	productRepo := catalogmemory.NewProductRepository()
	catalogSvc := catalogapp.NewCatalogApplicationService(productRepo)
	stock := inventorydomain.NewStockManager(productRepo)
	ledger := ordermemory.NewOrderLedger()
	orderSvc := orderapp.NewOrderApplicationService(stock, ledger, messaging.NewLogEventPublisher())

	creds, err := userfile.NewCredentialRepository(viper.GetString("users_file"))
	if err != nil {
		slog.Error("failed to open users file", "error", err)
		os.Exit(1)
	}
	authSvc := userapp.NewAuthApplicationService(creds, nil)

	if err := seedCatalog(ctx, catalogSvc); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	s := &shell{
		in:      bufio.NewScanner(os.Stdin),
		catalog: catalogSvc,
		orders:  orderSvc,
		auth:    authSvc,
	}
	s.run(ctx)
}

// seedCatalog loads the sample inventory sold by the store.
func seedCatalog(ctx context.Context, svc *catalogapp.CatalogApplicationService) error {
	seed := []struct {
		name     string
		category string
		price    int64
		stock    int
	}{
		{"Milk", "Dairy", 35, 100},
		{"Cheese", "Dairy", 20, 50},
		{"Chips", "Snacks", 20, 200},
		{"Cookies", "Snacks", 50, 150},
		{"Apples", "Fruits", 30, 100},
		{"Bananas", "Fruits", 10, 120},
		{"Carrots", "Vegetables", 25, 80},
		{"Broccoli", "Vegetables", 40, 60},
	}
	for _, p := range seed {
		if _, err := svc.AddProduct(ctx, p.name, p.category, decimal.NewFromInt(p.price), p.stock); err != nil {
			return err
		}
	}
	return nil
}

type shell struct {
	in      *bufio.Scanner
	catalog *catalogapp.CatalogApplicationService
	orders  *orderapp.OrderApplicationService
	auth    *userapp.AuthApplicationService
}

func (s *shell) run(ctx context.Context) {
	fmt.Println("======================================")
	fmt.Println("        Welcome to XYZ Store!         ")
	fmt.Println("======================================")

	for {
		fmt.Println("\n1. Login")
		fmt.Println("2. Create Account")
		fmt.Println("3. Quit")
		choice, ok := s.readInt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			customer := s.login(ctx)
			if customer != nil {
				s.customerMenu(ctx, customer)
			}
		case 2:
			s.createAccount(ctx)
		case 3:
			return
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
	}
}

func (s *shell) login(ctx context.Context) *userdomain.Customer {
	username, ok := s.readLine("\nEnter username: ")
	if !ok {
		return nil
	}
	password, ok := s.readLine("Enter password: ")
	if !ok {
		return nil
	}

	exists, err := s.auth.UserExists(ctx, username)
	if err != nil {
		fmt.Println("\nError accessing account store:", err)
		return nil
	}
	if !exists {
		fmt.Println("\nNo account with this username. Please create an account.")
		s.createAccount(ctx)
		return nil
	}

	customer, _, err := s.auth.Login(ctx, username, password)
	if err != nil {
		fmt.Println("\nLogin failed! Invalid username or password.")
		return nil
	}
	fmt.Println("\nLogin successful!")
	return customer
}

func (s *shell) createAccount(ctx context.Context) {
	username, ok := s.readLine("\nEnter new username: ")
	if !ok {
		return
	}
	exists, err := s.auth.UserExists(ctx, username)
	if err != nil {
		fmt.Println("\nError accessing account store:", err)
		return
	}
	if exists {
		fmt.Println("\nUsername already exists. Please choose a different username.")
		return
	}

	password, ok := s.readLine("Enter new password: ")
	if !ok {
		return
	}
	email, ok := s.readLine("Enter email: ")
	if !ok {
		return
	}

	if err := s.auth.Register(ctx, username, password, email); err != nil {
		fmt.Println("\nFailed to create account:", err)
		return
	}
	fmt.Println("\nAccount created successfully! Please log in.")
}

func (s *shell) customerMenu(ctx context.Context, customer *userdomain.Customer) {
	for {
		fmt.Println("\n1. View Products")
		fmt.Println("2. View Cart")
		fmt.Println("3. Checkout")
		fmt.Println("4. Logout")
		choice, ok := s.readInt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.viewProductsByCategory(ctx, customer)
		case 2:
			s.viewCart(ctx, customer)
		case 3:
			s.checkout(ctx, customer)
			fmt.Println("\nThank you for shopping!")
			return
		case 4:
			fmt.Println("\nLogged out successfully!")
			return
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
	}
}

func (s *shell) viewProductsByCategory(ctx context.Context, customer *userdomain.Customer) {
	for i, c := range categories {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	choice, ok := s.readInt("Choose a category: ")
	if !ok || choice < 1 || choice > len(categories) {
		fmt.Println("\nInvalid category choice.")
		return
	}
	category := categories[choice-1]

	count := 0
	fmt.Printf("\n%s Products:\n", category)
	for p := range s.catalog.ListByCategory(ctx, category) {
		fmt.Printf("%s - Rs %s (%d in stock)\n", p.Name, p.Price, p.Stock)
		count++
	}
	if count == 0 {
		fmt.Println("No products available in this category.")
		return
	}

	s.addToCart(ctx, customer)
}

func (s *shell) addToCart(ctx context.Context, customer *userdomain.Customer) {
	for {
		name, ok := s.readLine("\nEnter product name to add to cart: ")
		if !ok {
			return
		}
		quantity, ok := s.readInt("Enter quantity: ")
		if !ok {
			return
		}

		if _, err := s.orders.AddItem(ctx, customer.Username, name, quantity); err != nil {
			fmt.Println("\nProduct not available or insufficient stock!")
			continue
		}
		fmt.Println("\nItem added to cart.")

		more, ok := s.readLine("Do you want to add more items? (yes/no): ")
		if !ok || strings.EqualFold(more, "no") {
			s.viewCart(ctx, customer)
			return
		}
		if strings.EqualFold(more, "yes") {
			s.viewProductsByCategory(ctx, customer)
			return
		}
	}
}

func (s *shell) viewCart(ctx context.Context, customer *userdomain.Customer) {
	for {
		orders, err := s.orders.ListOrders(ctx, customer.Username)
		if err != nil {
			fmt.Println("\nError reading cart:", err)
			return
		}
		if len(orders) == 0 {
			fmt.Println("\nYour cart is empty.")
			return
		}

		fmt.Println("\nYour cart:")
		for _, o := range orders {
			for _, item := range o.Items {
				fmt.Printf("%s - Quantity: %d - Price: Rs %s\n", item.Product.Name, item.Quantity, item.LineTotal())
			}
		}

		fmt.Println("\n1. Delete an item")
		fmt.Println("2. Continue to checkout")
		choice, ok := s.readInt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			name, ok := s.readLine("\nEnter product name to delete: ")
			if !ok {
				return
			}
			quantity, ok := s.readInt("Enter quantity to delete: ")
			if !ok {
				return
			}
			if err := s.orders.RemoveItem(ctx, customer.Username, name, quantity); err != nil {
				fmt.Println("\nItem not found in cart or insufficient quantity to delete.")
				continue
			}
			fmt.Println("\nItem quantity updated in cart.")
		case 2:
			return
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
	}
}

func (s *shell) checkout(ctx context.Context, customer *userdomain.Customer) {
	amount, err := s.orders.Checkout(ctx, customer.Username)
	if err != nil {
		fmt.Println("\nYour cart is empty.")
		return
	}
	fmt.Printf("\nTotal amount to pay: Rs %s\n", amount)
}

// readLine prompts and returns the trimmed input line. ok is false when
// stdin is closed.
func (s *shell) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readInt prompts until a number is entered. A parse failure re-prompts
// instead of aborting.
func (s *shell) readInt(prompt string) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return n, true
	}
}
