package cli

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ittokunvim/cratesio"
)

// AddOneOptions holds flags for the add-one command.
type AddOneOptions struct {
	Overflow string
}

// NewAddOneCommand creates the add-one command.
func NewAddOneCommand() *cobra.Command {
	opts := &AddOneOptions{}

	cmd := &cobra.Command{
		Use:   "add-one N...",
		Short: "Add one to every number given",
		Long: "Add one to every number given and print the results, one per line.\n" +
			"The overflow policy defaults to $" + cratesio.OverflowPolicyEnv + ", or wrap when it is not set.",
		// negative numbers look like shorthand flags, RunE parses the flags itself
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseAddOneArgs(cmd, args)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if len(numbers) == 0 {
				return fmt.Errorf("requires at least 1 arg(s), only received 0")
			}

			policy, err := resolvePolicy(cmd, opts)
			if err != nil {
				return err
			}
			return runAddOne(cmd, policy, numbers)
		},
	}

	cmd.Flags().StringVar(&opts.Overflow, "overflow", "", "overflow policy (wrap|fail|saturate)")

	return cmd
}

// parseAddOneArgs parse the flags of add-one and return its positional arguments in order.
// Arguments that are negative integers are always positional
func parseAddOneArgs(cmd *cobra.Command, args []string) ([]string, error) {
	flags := cmd.Flags()
	flags.AddFlagSet(cmd.InheritedFlags())

	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if !isNegativeInt(arg) {
			rest = append(rest, arg)
		}
	}
	if err := flags.Parse(rest); err != nil {
		return nil, err
	}

	// flags.Args() is a subsequence of rest, so merging by value keeps the original order
	positional := flags.Args()
	result := make([]string, 0, len(args))
	j := 0
	for _, arg := range args {
		if isNegativeInt(arg) {
			result = append(result, arg)
		} else if j < len(positional) && arg == positional[j] {
			result = append(result, arg)
			j++
		}
	}
	return result, nil
}

func isNegativeInt(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

func resolvePolicy(cmd *cobra.Command, opts *AddOneOptions) (cratesio.OverflowPolicy, error) {
	if cmd.Flags().Changed("overflow") {
		return cratesio.ParseOverflowPolicy(opts.Overflow)
	}
	return cratesio.DefaultOverflowPolicy()
}

func runAddOne(cmd *cobra.Command, policy cratesio.OverflowPolicy, args []string) error {
	inc, err := cratesio.NewIncrementer(policy)
	if err != nil {
		return err
	}
	if log.V(1) {
		log.Infof("Incrementing %d value(s) with %s policy", len(args), policy)
	}

	out := cmd.OutOrStdout()
	builder := cratesio.AggregateErrorBuilder{}
	for _, arg := range args {
		x, err := strconv.Atoi(arg)
		if err != nil {
			log.Errorf("Invalid integer %q: %v", arg, err)
			builder.AddError(cratesio.OperationError{Operation: "ParseInt", Input: arg, Failure: cratesio.ErrInvalidArgument})
			continue
		}

		result, err := inc.AddOne(x)
		if err != nil {
			log.Errorf("Failed to increment %d: %v", x, err)
			builder.AddError(err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	return builder.GetError()
}
