package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/ledger"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

var (
	pagoAmount    string
	pagoMethod    string
	pagoReference string
	pagoDate      string
)

var pagosCmd = &cobra.Command{
	Use:   "pagos",
	Short: "Registro, consulta y corrección de pagos",
}

var pagosAddCmd = &cobra.Command{
	Use:   "add <doc-id>",
	Short: "Registra un pago contra un documento",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		snap, err := store.Load()
		if err != nil {
			return err
		}
		doc, err := snap.DocumentByID(args[0])
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(pagoAmount)
		if err != nil {
			return fmt.Errorf("%w: monto %q inválido", domain.ErrInvalidInput, pagoAmount)
		}
		paidAt := cfg.App.Now()
		if pagoDate != "" {
			paidAt, err = time.Parse("2006-01-02", pagoDate)
			if err != nil {
				return fmt.Errorf("%w: fecha %q inválida, se espera YYYY-MM-DD", domain.ErrInvalidInput, pagoDate)
			}
		}

		book := ledger.New()
		book.Restore(snap.Payments)
		stored, err := book.RecordPayment(doc, entity.Payment{
			Amount:      amount,
			Currency:    doc.Currency,
			PaymentDate: paidAt,
			Method:      pagoMethod,
			Reference:   pagoReference,
		})
		if err != nil {
			return err
		}

		snap.Payments = append(snap.Payments, *stored)
		if err := store.Save(snap); err != nil {
			return err
		}

		state := ledger.ComputePaymentState(doc, book.PaymentsFor(doc.ID))
		log.Info().
			Str("payment", stored.ID).
			Str("document", doc.ID).
			Str("amount", stored.Amount.StringFixed(2)).
			Msg("pago registrado")
		fmt.Printf("Pago %s registrado. Pendiente: %s\n",
			stored.ID, money.Format(state.Outstanding, doc.Currency))
		return nil
	},
}

var pagosListCmd = &cobra.Command{
	Use:   "list <doc-id>",
	Short: "Lista los pagos de un documento y su estado",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := openStore().Load()
		if err != nil {
			return err
		}
		doc, err := snap.DocumentByID(args[0])
		if err != nil {
			return err
		}
		payments := snap.PaymentsFor(doc.ID)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tMETHOD\tREFERENCE")
		for _, p := range payments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID,
				p.PaymentDate.Format("02/01/2006"),
				money.Format(p.Amount, p.Currency),
				p.Method,
				p.Reference,
			)
		}
		w.Flush()

		state := ledger.ComputePaymentState(doc, payments)
		fmt.Printf("\nState: %s   Paid: %s   Outstanding: %s\n",
			state.State,
			money.Format(state.Paid, doc.Currency),
			money.Format(state.Outstanding, doc.Currency),
		)
		if state.Disagree() {
			fmt.Println("Aviso: el estado del documento y la suma de pagos no coinciden.")
		}
		return nil
	},
}

var pagosDelCmd = &cobra.Command{
	Use:   "del <payment-id>",
	Short: "Elimina un pago (corregir = borrar + recrear)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		snap, err := store.Load()
		if err != nil {
			return err
		}

		book := ledger.New()
		book.Restore(snap.Payments)
		if err := book.DeletePayment(args[0]); err != nil {
			return err
		}

		kept := snap.Payments[:0]
		for _, p := range snap.Payments {
			if p.ID != args[0] {
				kept = append(kept, p)
			}
		}
		snap.Payments = kept

		if err := store.Save(snap); err != nil {
			return err
		}
		log.Info().Str("payment", args[0]).Msg("pago eliminado")
		fmt.Printf("Pago %s eliminado.\n", args[0])
		return nil
	},
}

func init() {
	pagosAddCmd.Flags().StringVar(&pagoAmount, "amount", "", "monto del pago (obligatorio)")
	pagosAddCmd.Flags().StringVar(&pagoMethod, "method", "cash", "medio de pago: cash, bank_transfer, mobile_money, card, other")
	pagosAddCmd.Flags().StringVar(&pagoReference, "reference", "", "referencia externa del pago")
	pagosAddCmd.Flags().StringVar(&pagoDate, "date", "", "fecha del pago YYYY-MM-DD (por defecto hoy)")
	_ = pagosAddCmd.MarkFlagRequired("amount")

	pagosCmd.AddCommand(pagosAddCmd, pagosListCmd, pagosDelCmd)
}
