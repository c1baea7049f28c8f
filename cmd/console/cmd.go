// Command console is a one-shot operator tool over the platform API:
// review and decide transactions, inspect or edit the denomination
// slots, and manage the UPI id and plans.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/planvest/admin-backend/internal/client/platform"
	"github.com/planvest/admin-backend/internal/config"
	"github.com/planvest/admin-backend/internal/console"
	"github.com/planvest/admin-backend/pkg/logger"
)

const usage = `usage: console <command> [args]

commands:
  transactions                     list all transactions
  accept <transactionId>           accept a pending transaction
  deny <transactionId> <reason>    deny a pending transaction
  denominations                    show the four denomination slots
  set-denomination <slot> <amount> update one slot amount and commit
  upi [value]                      show or set the UPI id
  plans                            list subscription plans
`

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	ctx := logger.ToContext(context.Background(), log)

	api, err := platform.NewAdapter(nil, cfg.PlatformURL, platform.NewStaticTokenSource(cfg.PlatformToken))
	exitOnError("invalid platform configuration", err, log)

	store := console.NewTransactionStore(api)
	approval := console.NewApprovalController(api, store)
	ledger := console.NewDenominationLedger(api)
	upi := console.NewUpiRegistry(api)
	plans := console.NewPlanRegistry(api)

	switch os.Args[1] {
	case "transactions":
		exitOnError("refresh failed", store.Refresh(ctx), log)
		printTransactions(store.List())

	case "accept":
		requireArgs(3)
		exitOnError("refresh failed", store.Refresh(ctx), log)
		exitOnError("accept failed", approval.Accept(ctx, os.Args[2]), log)
		fmt.Printf("transaction %s accepted\n", os.Args[2])

	case "deny":
		requireArgs(4)
		exitOnError("refresh failed", store.Refresh(ctx), log)
		exitOnError("deny failed", approval.Deny(os.Args[2]), log)
		exitOnError("deny failed", approval.SubmitDenial(ctx, os.Args[3]), log)
		fmt.Printf("transaction %s denied\n", os.Args[2])

	case "denominations":
		exitOnError("refresh failed", ledger.Refresh(ctx), log)
		printSlots(ledger.Slots())

	case "set-denomination":
		requireArgs(4)
		slot, err := strconv.Atoi(os.Args[2])
		exitOnError("invalid slot index", err, log)
		amount, err := strconv.ParseFloat(os.Args[3], 64)
		exitOnError("invalid amount", err, log)

		exitOnError("refresh failed", ledger.Refresh(ctx), log)
		exitOnError("invalid slot", ledger.SetSlotAmount(slot, amount), log)
		result := ledger.Commit(ctx)
		exitOnError("commit failed", result.Err(), log)
		printSlots(ledger.Slots())

	case "upi":
		if len(os.Args) > 2 {
			exitOnError("save failed", upi.Save(ctx, os.Args[2]), log)
		} else {
			_, err := upi.Fetch(ctx)
			exitOnError("fetch failed", err, log)
		}
		fmt.Printf("upi id: %s\n", upi.Current())

	case "plans":
		exitOnError("refresh failed", plans.Refresh(ctx), log)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE\tRETURN%")
		for _, p := range plans.Plans() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f\n", p.ID, p.Name, p.Type, p.Price, p.ReturnPercentage)
		}
		w.Flush()

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireArgs(n int) {
	if len(os.Args) < n {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func printTransactions(txs []console.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRANSACTION\tEMAIL\tAMOUNT\tSTATUS\tREASON")
	for _, t := range txs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", t.TransactionID, t.UserEmail, t.Amount, t.Status, t.Reason)
	}
	w.Flush()
}

func printSlots(slots [4]console.Slot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tRECORD\tAMOUNT")
	for _, s := range slots {
		record := s.RecordID
		if record == "" {
			record = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\n", s.Index, record, s.Amount)
	}
	w.Flush()
}
