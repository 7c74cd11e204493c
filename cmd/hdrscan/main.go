package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clarete/hdrscan"
	"github.com/clarete/hdrscan/internal/hlog"
	"github.com/clarete/hdrscan/sdk"
)

var (
	debug    bool
	forceAll bool
	verbose  bool
)

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func scan(cmd *cobra.Command, args []string) {
	logger := hlog.Logger(hlog.NopLogger{})
	if verbose {
		logger = hlog.NewStdLogger(os.Stderr)
	}

	builder := hdrscan.NewBuilder().WithLogger(logger)

	for _, path := range args {
		var err error
		if isDirectory(path) {
			err = builder.AddFromDir(path)
		} else {
			err = builder.AddFromCppPath(path)
		}
		if err != nil {
			logger.Errorf("%v", err)
		}
	}

	root := builder.Finish()
	if debug {
		fmt.Print(root.DebugString())
	}
}

func scanSDK(cmd *cobra.Command, args []string) {
	logger := hlog.Logger(hlog.NopLogger{})
	if verbose {
		logger = hlog.NewStdLogger(os.Stderr)
	}

	kits, err := sdk.Discover()
	if err != nil {
		logger.Errorf("discovering kits: %v", err)
		return
	}

	builder := hdrscan.NewBuilder().WithLogger(logger)
	for _, kit := range kits {
		if err := builder.AddFromSDK(kit, forceAll); err != nil {
			logger.Errorf("scanning kit %s: %v", kit.Version, err)
		}
	}

	root := builder.Finish()
	if debug {
		fmt.Print(root.DebugString())
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "hdrscan",
		Short: "A C/C++ header symbol catalog scanner",
		Long:  "Scans a corpus of C/C++ headers and builds a structured symbol catalog of interfaces, structs, unions, enums, functions, macros, and constants.",
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("hdrscan 0.1.0")
		},
	}

	var scanCmd = &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan one or more header files or directories",
		Args:  cobra.MinimumNArgs(1),
		Run:   scan,
	}

	var sdkCmd = &cobra.Command{
		Use:   "sdk",
		Short: "List Windows Kits discovered on this machine",
		Run: func(cmd *cobra.Command, args []string) {
			kits, err := sdk.Discover()
			if err != nil {
				fmt.Fprintf(os.Stderr, "hdrscan: %v\n", err)
				os.Exit(1)
			}
			for _, kit := range kits {
				fmt.Printf("%s\t%s\n", kit.Version, kit.Include)
			}
		},
	}

	var scanSDKCmd = &cobra.Command{
		Use:   "scan-sdk",
		Short: "Scan every Windows Kit discovered on this machine",
		Run:   scanSDK,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(sdkCmd)
	rootCmd.AddCommand(scanSDKCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	scanCmd.Flags().BoolVarP(&debug, "debug", "", false, "print the resulting catalog")
	scanSDKCmd.Flags().BoolVarP(&debug, "debug", "", false, "print the resulting catalog")
	scanSDKCmd.Flags().BoolVarP(&forceAll, "force-all", "", false, "scan every header in each kit, not just the curated subset")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
