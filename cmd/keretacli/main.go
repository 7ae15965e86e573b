package main // Entry point package

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv" // .env loading for local runs
	"github.com/spf13/pflag"   // command line flags

	"github.com/alfikriangelo/rail-ticket-reservation/internal/config"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/database"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/pricing"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/queue"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/repository"
	"github.com/alfikriangelo/rail-ticket-reservation/internal/service"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file to load before reading config")
	pflag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("load env file %s: %v", *envFile, err)
		}
	} else {
		_ = godotenv.Load() // best effort: a local .env is optional
	}

	cfg := config.Load()
	log.Printf("starting (env=%s, db=%s@%s:%s/%s)", cfg.Env, cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	// No feature can function without the schema; failing here is fatal.
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	exporter := service.NewExporter(cfg.ExportDir)
	events := queue.NewPublisher(cfg.AMQPURL)
	directory := service.NewAccountDirectory(
		repository.NewAccountRepo(db), exporter, events,
		cfg.JWTSecret, cfg.SessionTTLMin, cfg.BcryptCost)
	reservations := service.NewReservationService(
		directory, pricing.Default(), repository.NewTicketRepo(db), exporter, events)

	if err := reservations.RefreshAll(ctx); err != nil {
		log.Fatalf("load mirrors: %v", err)
	}

	ui := &cli{in: bufio.NewScanner(os.Stdin), reservations: reservations, directory: directory}
	ui.mainMenu(ctx)
}

// cli drives the interactive menus. Every error coming out of the
// service layer is recoverable here: it is printed and the loop
// returns to a menu.
type cli struct {
	in           *bufio.Scanner
	directory    *service.AccountDirectory
	reservations *service.ReservationService
}

func (c *cli) mainMenu(ctx context.Context) {
	for {
		fmt.Println("\nMain menu:")
		fmt.Println("1. Login")
		fmt.Println("2. Create account")
		fmt.Println("3. Exit")

		switch c.prompt("Choose an option (1/2/3): ") {
		case "1":
			c.login(ctx)
		case "2":
			c.createAccount(ctx)
		case "3":
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (c *cli) createAccount(ctx context.Context) {
	username := c.prompt("New username: ")
	password := c.prompt("New password: ")
	if username == "" || password == "" {
		fmt.Println("Username and password must not be empty.")
		return
	}
	if err := c.directory.CreateAccount(ctx, username, password); err != nil {
		c.report(err)
		return
	}
	fmt.Println("Account created.")
}

func (c *cli) login(ctx context.Context) {
	username := c.prompt("Username (or 'exit' to go back): ")
	if strings.EqualFold(username, "exit") {
		return
	}
	password := c.prompt("Password: ")

	session, err := c.directory.Login(username, password)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Println("Login successful.")
	c.userMenu(ctx, session)
}

func (c *cli) userMenu(ctx context.Context, session model.Session) {
	for {
		fmt.Println("\nMenu:")
		fmt.Println("1. Buy ticket")
		fmt.Println("2. View purchased tickets")
		fmt.Println("3. Logout")

		switch c.prompt("Choose an option (1/2/3): ") {
		case "1":
			c.buyTicket(ctx, session)
		case "2":
			c.viewTickets(ctx, session)
		case "3":
			c.directory.Logout(session)
			fmt.Println("Logged out.")
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (c *cli) buyTicket(ctx context.Context, session model.Session) {
	prices := c.reservations.Prices()

	origin, ok := c.pick("departure station", prices.Stations())
	if !ok {
		return
	}
	destination, ok := c.pick("arrival station", prices.Stations())
	if !ok {
		return
	}
	train, ok := c.pick("train", prices.Trains())
	if !ok {
		return
	}

	count, err := strconv.Atoi(c.prompt("Number of passengers: "))
	if err != nil || count <= 0 {
		c.report(service.ErrInvalidPassengerCount)
		return
	}
	passengers := make([]model.Passenger, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Printf("Passenger %d\n", i)
		passengers = append(passengers, model.Passenger{
			Name: c.prompt("  Name: "),
			ID:   c.prompt("  Identity number: "),
		})
	}

	receipt, err := c.reservations.Purchase(ctx, session, origin, destination, train, passengers)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Printf("Tickets booked! Total fare: Rp.%d\n", receipt.TotalFare)
	printTickets(receipt.Tickets)
}

func (c *cli) viewTickets(ctx context.Context, session model.Session) {
	tickets, err := c.reservations.ListTickets(ctx, session)
	if err != nil {
		c.report(err)
		return
	}
	if len(tickets) == 0 {
		fmt.Println("You have not bought any tickets yet.")
		return
	}
	fmt.Printf("\nTickets bought by %s:\n", session.Username)
	printTickets(tickets)
}

// pick renders a numbered list and returns the chosen entry.
func (c *cli) pick(what string, options []string) (string, bool) {
	fmt.Printf("Choose %s:\n", what)
	for i, opt := range options {
		fmt.Printf("%d. %s\n", i+1, opt)
	}
	n, err := strconv.Atoi(c.prompt(fmt.Sprintf("Pick a %s number: ", what)))
	if err != nil || n < 1 || n > len(options) {
		fmt.Println("Invalid choice.")
		return "", false
	}
	return options[n-1], true
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// report prints a service error in user terms. Partial booking
// failures additionally list the rows that did persist, since those
// bookings are real.
func (c *cli) report(err error) {
	var partial *service.PartialBookingError
	switch {
	case errors.As(err, &partial):
		fmt.Printf("Booking failed partway: %v\n", partial.Cause)
		fmt.Printf("%d ticket(s) were already written and remain booked:\n", len(partial.Succeeded))
		printTickets(partial.Succeeded)
	case errors.Is(err, service.ErrDuplicateUsername):
		fmt.Println("That username is taken, pick another one.")
	case errors.Is(err, service.ErrUnknownUser):
		fmt.Println("Username not found, try again.")
	case errors.Is(err, service.ErrInvalidCredentials):
		fmt.Println("Login failed, check username and password.")
	case errors.Is(err, service.ErrNotAuthenticated):
		fmt.Println("You need to be logged in for that.")
	case errors.Is(err, service.ErrInvalidRoute):
		fmt.Println("Departure and arrival station must differ.")
	case errors.Is(err, service.ErrInvalidPassengerCount):
		fmt.Println("Enter a passenger count of at least 1.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func printTickets(tickets []model.Ticket) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REFERENCE\tPASSENGER\tID\tTRAIN\tFROM\tTO\tFARE")
	for _, t := range tickets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\tRp.%d\n",
			t.BookingReference, t.PassengerName, t.PassengerID,
			t.TrainName, t.OriginStation, t.DestinationStation, t.Fare)
	}
	_ = w.Flush()
}
