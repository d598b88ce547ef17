package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Antonboom/ib-instruments-config/internal/ibconfig"
	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CODE...",
		Short: "Print IB parameters of the instruments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := newEncoder(cmd.OutOrStdout())

			var failed int
			for _, code := range args {
				res := ibconfig.GetInstrumentObject(instruments.Code(code), a.ibCfg, a.logger)
				if !res.OK() {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", code, res.Status)
					continue
				}

				if err := enc.Encode(res.Instrument); err != nil {
					return fmt.Errorf("encode %s: %v", code, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d instruments not resolved", failed, len(args))
			}
			return nil
		},
	}
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse SYMBOL...",
		Short: "Print instrument codes of the IB symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				code, err := ibconfig.GetInstrumentCodeFromBrokerCode(a.ibCfg, ibconfig.Symbol(s), a.logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s, code)
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print configured instrument codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, code := range ibconfig.GetInstrumentList(a.ibCfg, a.logger) {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print IB parameters of every configured instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.ibCfg.Missing() {
				return errors.New("IB configuration missing")
			}

			codes := ibconfig.GetInstrumentList(a.ibCfg, a.logger)
			result := make([]ibconfig.InstrumentWithConfigData, 0, len(codes))
			seen := make(map[instruments.Code]struct{}, len(codes))

			for _, code := range codes {
				if _, ok := seen[code]; ok {
					continue
				}
				seen[code] = struct{}{}

				if res := ibconfig.GetInstrumentObject(code, a.ibCfg, a.logger); res.OK() {
					result = append(result, res.Instrument)
				}
			}

			sort.Slice(result, func(i, j int) bool {
				return result[i].InstrumentCode() < result[j].InstrumentCode()
			})
			return newEncoder(cmd.OutOrStdout()).Encode(result)
		},
	}
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}
