package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	// Interrupts cancel silently; the core has no side effects to unwind.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr)
		os.Exit(130)
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "subnetcalc",
		Short:         "IPv4 subnetting, notation and aggregation calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newFLSMCmd(),
		newVLSMCmd(),
		newConvertCmd(),
		newValidateCmd(),
		newContainsCmd(),
		newInfoCmd(),
		newRangeCmd(),
		newSupernetCmd(),
	)
	return root
}

// argOrPrompt returns the positional argument at idx, or prompts on stdin
// when it was not supplied. Callers hand in one reader per command
// execution so consecutive prompts share the same buffer.
func argOrPrompt(cmd *cobra.Command, in *bufio.Reader, args []string, idx int, label string) (string, error) {
	if idx < len(args) {
		return strings.TrimSpace(args[idx]), nil
	}
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(line), nil
}

func maybeExport(cmd *cobra.Command, tool string, columns []string, rows [][]string) error {
	path, _ := cmd.Flags().GetString("export")
	if path == "" {
		return nil
	}
	if err := exportResult(path, tool, columns, rows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nExported to %s\n", path)
	return nil
}

func newFLSMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flsm [network] [subnets|/prefix]",
		Short: "Split a network into equal-size subnets",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runFLSM,
	}
	cmd.Flags().String("export", "", "write results to a file (.xlsx, .yaml, .json, .csv)")
	return cmd
}

func runFLSM(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	networkArg, err := argOrPrompt(cmd, in, args, 0, "Enter the base subnet address (e.g., 192.168.0.0/24): ")
	if err != nil {
		return err
	}
	selector, err := argOrPrompt(cmd, in, args, 1, "Enter the number of subnets to create OR prefix length (e.g., 16 or /28): ")
	if err != nil {
		return err
	}

	base, err := parseNetwork(networkArg)
	if err != nil {
		return err
	}

	var subnets []SubnetInfo
	byPrefix := strings.HasPrefix(selector, "/")
	var value int
	if byPrefix {
		value, err = strconv.Atoi(selector[1:])
		if err != nil {
			return fmt.Errorf("invalid prefix length, provide a number after the '/'")
		}
		subnets, err = splitByPrefix(base, value)
	} else {
		value, err = strconv.Atoi(selector)
		if err != nil {
			return fmt.Errorf("invalid input, provide either a number of subnets or a prefix length (e.g., 16 or /28)")
		}
		subnets, err = splitByCount(base, value)
	}
	if err != nil {
		return err
	}

	first := subnets[0].Subnet
	extraBits := first.Bits() - base.Bits()
	maxSubnets := uint64(1) << extraBits

	fmt.Fprintln(out, "\nFLSM Summary:")
	fmt.Fprintf(out, "Base Network:         %s\n", base)
	fmt.Fprintf(out, "Subnet Bits:          %d\n", extraBits)
	fmt.Fprintf(out, "New Prefix Length:    /%d\n", first.Bits())
	fmt.Fprintf(out, "Subnet Mask:          %s\n", netmaskString(first.Bits()))
	fmt.Fprintf(out, "Hosts per Subnet:     %d\n", subnets[0].TotalHosts)
	if byPrefix {
		fmt.Fprintf(out, "Specified Prefix:     /%d\n", value)
		fmt.Fprintf(out, "Maximum Subnets:      %d\n", maxSubnets)
		fmt.Fprintf(out, "Created Subnets:      %d\n", len(subnets))
	} else {
		fmt.Fprintf(out, "Requested Subnets:    %d\n", value)
		fmt.Fprintf(out, "Actual Subnets:       %d\n", len(subnets))
		fmt.Fprintf(out, "Unused Subnets:       %d\n", maxSubnets-uint64(value))
	}
	fmt.Fprintln(out)

	columns := []string{"Subnet", "CIDR Notation", "Subnet Mask", "Network ID", "Broadcast ID", "First Host IP", "Last Host IP", "Hosts"}
	rows := make([][]string, 0, len(subnets))
	for _, s := range subnets {
		sum := networkSummary(s.Subnet)
		rows = append(rows, []string{
			"Subnet " + itoa(s.Index),
			s.Subnet.String(),
			sum.Netmask,
			sum.NetworkAddr.String(),
			sum.Broadcast.String(),
			sum.FirstUsable.String(),
			sum.LastUsable.String(),
			itou(s.TotalHosts),
		})
	}
	renderTable(out, append([][]string{columns}, rows...))
	return maybeExport(cmd, "flsm", columns, rows)
}

func newVLSMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlsm [network] [hosts...]",
		Short: "Split a network into demand-sized subnets",
		RunE:  runVLSM,
	}
	cmd.Flags().String("export", "", "write results to a file (.xlsx, .yaml, .json, .csv)")
	return cmd
}

func parseHostCounts(raw string) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	hosts := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid host count %q", f)
		}
		hosts = append(hosts, v)
	}
	if len(hosts) == 0 {
		return nil, fmt.Errorf("no valid host requirements provided")
	}
	return hosts, nil
}

func runVLSM(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	networkArg, err := argOrPrompt(cmd, in, args, 0, "Enter the base subnet address (e.g., 192.168.0.0/24): ")
	if err != nil {
		return err
	}
	var hostsRaw string
	if len(args) > 1 {
		hostsRaw = strings.Join(args[1:], " ")
	} else {
		hostsRaw, err = argOrPrompt(cmd, in, args, 1, "Enter the number of hosts required for each subnet (comma or space separated, e.g., 50 25 10): ")
		if err != nil {
			return err
		}
	}

	base, err := parseNetwork(networkArg)
	if err != nil {
		return err
	}
	hosts, err := parseHostCounts(hostsRaw)
	if err != nil {
		return err
	}

	subnets, err := planVLSM(base, hosts)
	if err != nil {
		return err
	}

	var needed int
	var allocated uint64
	for _, s := range subnets {
		needed += s.NeededHosts
		allocated += s.TotalHosts
	}

	fmt.Fprintln(out, "\nVLSM Summary:")
	fmt.Fprintf(out, "Base Network:          %s\n", base)
	fmt.Fprintf(out, "Number of Subnets:     %d\n", len(subnets))
	fmt.Fprintf(out, "Total Hosts Needed:    %d\n", needed)
	fmt.Fprintf(out, "Total Hosts Allocated: %d\n", allocated)
	fmt.Fprintln(out)

	columns := []string{"Subnet", "Subnet Mask", "Network ID", "Broadcast ID", "First Host IP", "Last Host IP", "Needed Hosts", "Total Hosts"}
	rows := make([][]string, 0, len(subnets))
	for _, s := range subnets {
		sum := networkSummary(s.Subnet)
		rows = append(rows, []string{
			s.Subnet.String(),
			sum.Netmask,
			sum.NetworkAddr.String(),
			sum.Broadcast.String(),
			sum.FirstUsable.String(),
			sum.LastUsable.String(),
			itoa(s.NeededHosts),
			itou(s.TotalHosts),
		})
	}
	renderTable(out, append([][]string{columns}, rows...))
	return maybeExport(cmd, "vlsm", columns, rows)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [notation]",
		Short: "Convert between CIDR, subnet mask and wildcard mask notation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	input, err := argOrPrompt(cmd, bufio.NewReader(cmd.InOrStdin()), args, 0, "Enter a notation to convert (CIDR prefix, subnet mask, or wildcard mask): ")
	if err != nil {
		return err
	}
	conv, err := convertNotation(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nNotation Conversion Results:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Notation Type:      %s\n", conv.NotationType)
	fmt.Fprintf(out, "CIDR Notation:      %s\n", conv.CIDR)
	fmt.Fprintf(out, "Subnet Mask:        %s\n", conv.SubnetMask)
	fmt.Fprintf(out, "Wildcard Mask:      %s\n", conv.WildcardMask)
	fmt.Fprintf(out, "Binary Mask:        %s\n", conv.BinaryMask)
	fmt.Fprintf(out, "Hex Mask:           %s\n", conv.HexMask)
	fmt.Fprintf(out, "Network Bits:       %d\n", conv.NetworkBits)
	fmt.Fprintf(out, "Host Bits:          %d\n", conv.HostBits)
	fmt.Fprintf(out, "Max Addresses:      %d\n", conv.MaxAddresses)
	fmt.Fprintf(out, "Usable Hosts:       %d\n", conv.UsableHosts)
	return nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [ip]",
		Short: "Validate and classify an IPv4 address",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	input, err := argOrPrompt(cmd, bufio.NewReader(cmd.InOrStdin()), args, 0, "Enter an IP address to validate: ")
	if err != nil {
		return err
	}
	addr, err := parseAddr(input)
	if err != nil {
		return err
	}
	c := classifyAddr(addr)

	fmt.Fprintln(out, "\nIP Address Analysis Results:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "IP Address:        %s\n", addr)
	fmt.Fprintf(out, "Valid IPv4:        true\n")
	fmt.Fprintf(out, "Address Type:      %s\n", c.Type)
	fmt.Fprintf(out, "Binary Form:       %s\n", c.Binary)
	fmt.Fprintf(out, "Hex Form:          %s\n", c.Hex)
	fmt.Fprintf(out, "Decimal Form:      %d\n", c.Decimal)
	fmt.Fprintf(out, "Octet Values:      %s\n", c.Octets)
	fmt.Fprintf(out, "Address Class:     %s\n", c.Class)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Network Info:")
	fmt.Fprintln(out, c.RangeInfo)
	fmt.Fprintln(out, c.CommType)
	return nil
}

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains [ip] [network]",
		Short: "Check whether an address belongs to a network",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runContains,
	}
}

func runContains(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	ipArg, err := argOrPrompt(cmd, in, args, 0, "Enter an IP address to check: ")
	if err != nil {
		return err
	}
	netArg, err := argOrPrompt(cmd, in, args, 1, "Enter a network in CIDR notation (e.g., 192.168.1.0/24): ")
	if err != nil {
		return err
	}

	addr, err := parseAddr(ipArg)
	if err != nil {
		return err
	}
	network, err := parseNetwork(netArg)
	if err != nil {
		return err
	}

	m := checkMembership(addr, network)
	fmt.Fprintln(out, "\nIP Network Membership Check:")
	fmt.Fprintf(out, "IP Address:         %s\n", addr)
	fmt.Fprintf(out, "Network:            %s\n", m.Summary.Network)
	fmt.Fprintf(out, "Is IP in Network:   %t\n", m.InNetwork)
	fmt.Fprintln(out)
	printNetworkSummary(out, m.Summary)

	if m.InNetwork {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Host Position Details:")
		fmt.Fprintf(out, "Position in Network: %d (starting from 0)\n", m.HostPosition)
		fmt.Fprintf(out, "Position from End:   %d (to broadcast)\n", m.PositionFromEnd)
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [network]",
		Short: "Show a network summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	input, err := argOrPrompt(cmd, bufio.NewReader(cmd.InOrStdin()), args, 0, "Enter a network in CIDR notation (e.g., 192.168.1.0/24): ")
	if err != nil {
		return err
	}
	network, err := parseNetwork(input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nNetwork Summary:")
	printNetworkSummary(out, networkSummary(network))
	fmt.Fprintf(out, "Binary Form:        %s\n", binaryVisual(network))
	return nil
}

func printNetworkSummary(out io.Writer, s NetworkSummary) {
	fmt.Fprintln(out, "Network Details:")
	fmt.Fprintf(out, "Network Address:    %s\n", s.NetworkAddr)
	fmt.Fprintf(out, "Broadcast Address:  %s\n", s.Broadcast)
	fmt.Fprintf(out, "Subnet Mask:        %s\n", s.Netmask)
	fmt.Fprintf(out, "Wildcard Mask:      %s\n", s.Wildcard)
	fmt.Fprintf(out, "Prefix Length:      /%d\n", s.PrefixLength)
	fmt.Fprintf(out, "Total Addresses:    %d\n", s.NumAddresses)
	fmt.Fprintf(out, "Usable Hosts:       %d\n", s.UsableHosts)
	fmt.Fprintf(out, "First Usable Host:  %s\n", s.FirstUsable)
	fmt.Fprintf(out, "Last Usable Host:   %s\n", s.LastUsable)
}

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range [start] [end]",
		Short: "Summarize an address range into minimal CIDR blocks",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runRange,
	}
	cmd.Flags().String("export", "", "write results to a file (.xlsx, .yaml, .json, .csv)")
	return cmd
}

func runRange(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	startArg, err := argOrPrompt(cmd, in, args, 0, "Enter the starting IP address: ")
	if err != nil {
		return err
	}
	endArg, err := argOrPrompt(cmd, in, args, 1, "Enter the ending IP address: ")
	if err != nil {
		return err
	}

	start, err := parseAddr(startArg)
	if err != nil {
		return err
	}
	end, err := parseAddr(endArg)
	if err != nil {
		return err
	}

	summary := summarizeRange(start, end)
	fmt.Fprintln(out, "\nIP Range Analysis:")
	fmt.Fprintf(out, "Start IP:           %s\n", summary.Start)
	fmt.Fprintf(out, "End IP:             %s\n", summary.End)
	fmt.Fprintf(out, "Total Addresses:    %d\n", summary.TotalAddresses)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Optimal CIDR Block Representation:")

	columns := []string{"Block", "CIDR", "Network ID", "Broadcast ID", "Subnet Mask", "Addresses"}
	rows := make([][]string, 0, len(summary.Blocks))
	for i, block := range summary.Blocks {
		sum := networkSummary(block)
		rows = append(rows, []string{
			"Block " + itoa(i+1),
			block.String(),
			sum.NetworkAddr.String(),
			sum.Broadcast.String(),
			sum.Netmask,
			itou(sum.NumAddresses),
		})
	}
	renderTable(out, append([][]string{columns}, rows...))
	return maybeExport(cmd, "range", columns, rows)
}

func newSupernetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supernet [networks...]",
		Short: "Aggregate networks and find their common supernet",
		RunE:  runSupernet,
	}
	cmd.Flags().String("export", "", "write aggregated blocks to a file (.xlsx, .yaml, .json, .csv)")
	return cmd
}

func runSupernet(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	networks := args
	if len(networks) == 0 {
		raw, err := argOrPrompt(cmd, bufio.NewReader(cmd.InOrStdin()), args, 0, "Enter a list of networks to aggregate (comma or space separated, e.g., 192.168.0.0/24 192.168.1.0/24): ")
		if err != nil {
			return err
		}
		networks = strings.Fields(strings.ReplaceAll(raw, ",", " "))
	}
	if len(networks) == 0 {
		return fmt.Errorf("no networks provided")
	}

	fmt.Fprintln(out, "\nSupernetting Results:")
	fmt.Fprintf(out, "Input Networks (%d):\n", len(networks))
	for i, raw := range networks {
		p, err := parseNetwork(raw)
		if err != nil {
			fmt.Fprintf(out, "  %d. %s (Invalid)\n", i+1, raw)
			continue
		}
		fmt.Fprintf(out, "  %d. %s (%d addresses)\n", i+1, p, prefixSize(p.Bits()))
		fmt.Fprintf(out, "     Binary: %s\n", binaryVisual(p))
		fmt.Fprintf(out, "     Prefix: %s\n", prefixBinaryMask(p))
	}

	hasOverlap, overlap := checkOverlap(networks)
	if hasOverlap {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: The provided networks have overlapping address spaces.")
		fmt.Fprintf(out, "      %d addresses appear in multiple networks.\n", overlap)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "1. Efficient Aggregation (Multiple Blocks)")
	blocks := aggregateNetworks(networks)
	columns := []string{"Block", "CIDR", "Addresses"}
	var rows [][]string
	if len(blocks) > 0 {
		fmt.Fprintf(out, "   Result: %d CIDR block(s)\n", len(blocks))
		var total uint64
		for i, block := range blocks {
			fmt.Fprintf(out, "     Block %d: %s (%d addresses)\n", i+1, block, prefixSize(block.Bits()))
			fmt.Fprintf(out, "            Binary: %s\n", binaryVisual(block))
			fmt.Fprintf(out, "            Prefix: %s\n", prefixBinaryMask(block))
			total += prefixSize(block.Bits())
			rows = append(rows, []string{"Block " + itoa(i+1), block.String(), itou(prefixSize(block.Bits()))})
		}
		fmt.Fprintf(out, "   Total Addresses: %d\n", total)
	} else {
		fmt.Fprintln(out, "   No valid aggregation possible.")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "2. Single Supernet (Summary Route)")
	if supernet, ok := findSupernet(networks); ok {
		size := prefixSize(supernet.Bits())
		unique := uniqueAddressCount(networks)
		waste := size - unique
		wastePct := float64(0)
		if size > 0 {
			wastePct = float64(waste) / float64(size) * 100
		}
		fmt.Fprintf(out, "   Result: %s (%d addresses)\n", supernet, size)
		fmt.Fprintf(out, "          Binary: %s\n", binaryVisual(supernet))
		fmt.Fprintf(out, "          Prefix: %s\n", prefixBinaryMask(supernet))
		if hasOverlap {
			fmt.Fprintln(out, "   Note: Calculation accounts for overlapping networks")
		}
		fmt.Fprintf(out, "   Address Waste: %d addresses (%.1f%%)\n", waste, wastePct)
	} else {
		fmt.Fprintln(out, "   No valid supernet possible.")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "3. Common Prefix Analysis")
	if common, prefixLen, ok := commonPrefix(networks); ok {
		fmt.Fprintf(out, "   Common Prefix: %d bits\n", prefixLen)
		fmt.Fprintf(out, "   Common Network: %s\n", common)
		fmt.Fprintf(out, "   Prefix Mask:  %s\n", prefixPatternMask(prefixLen))
		fmt.Fprintln(out, "                 N = Network bits (match), H = Host bits (vary)")
		fmt.Fprintf(out, "   Binary Form:  %s\n", formatBinary(ipv4ToU32(common.Addr())))
		fmt.Fprintf(out, "   Address Range: %s - %s\n", common.Addr(), broadcastOf(common))
		fmt.Fprintf(out, "   Total Range:   %d addresses\n", prefixSize(common.Bits()))
	} else {
		fmt.Fprintln(out, "   No common prefix found.")
	}

	return maybeExport(cmd, "supernet", columns, rows)
}
