package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/NeilNjae/pci/pkg/logging"
	"github.com/NeilNjae/pci/pkg/model"
)

var flags *pflag.FlagSet

var (
	cfgPathFlag    string
	dataFlag       string
	encodingFlag   string
	modelFlag      string
	gammaFlag      float64
	testRatioFlag  float64
	seedFlag       int64
	foldsFlag      int
	degenerateFlag string
	logLevelFlag   string
	rowFlag        string
	outFlag        string
	rawFlag        bool
)

func init() {
	resetFlags()
}

// Explicitly define a method to facilitate tests
func resetFlags() {
	flags = &pflag.FlagSet{}

	flags.StringVarP(&cfgPathFlag, "config", "c", "", "matchmaker config file (yaml)")
	flags.StringVarP(&dataFlag, "data", "d", "matchmaker.csv", "comma separated rows, label last")
	flags.StringVarP(&encodingFlag, "encoding", "e", "match", "row encoding: match or numeric")
	flags.StringVarP(&modelFlag, "model", "m", "linear", "classifier: linear or kernel")
	flags.Float64VarP(&gammaFlag, "gamma", "g", model.DefaultGamma, "kernel bandwidth")
	flags.Float64Var(&testRatioFlag, "test-ratio", 0.2, "share of rows held out for testing")
	flags.Int64Var(&seedFlag, "seed", 1, "shuffle seed")
	flags.IntVarP(&foldsFlag, "folds", "k", 0, "cross validation folds, 0 for a single hold out split")
	flags.StringVar(&degenerateFlag, "degenerate", "zero", "constant feature policy: zero or error")
	flags.StringVar(&logLevelFlag, "log-level", logging.DefaultConfig(true).Level, "debug, info, warn or error")
	flags.StringVarP(&rowFlag, "row", "r", "", "comma separated fields of the row to classify, without a label")
	flags.StringVarP(&outFlag, "out", "o", "ages.png", "output image; the extension picks the format")
	flags.BoolVar(&rawFlag, "raw", false, "plot unscaled values")
}

func attachFlags(cmd *cobra.Command, names []string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			cmdFlags.AddFlag(flag)
		} else {
			panic(fmt.Errorf("Could not find flag '%s' to attach to command '%s'", name, cmd.Name()))
		}
	}
}

var commonFlags = []string{"config", "data", "encoding", "degenerate", "log-level"}

func rootCMD() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchmaker",
		Short:         "binary classifiers for matchmaker data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(evaluateCMD(), classifyCMD(), plotCMD(), describeCMD())
	return root
}

func main() {
	if err := rootCMD().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
