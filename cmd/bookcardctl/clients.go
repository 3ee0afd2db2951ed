package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
	"github.com/bookcard-io/bookcard-clients/internal/form"
	"github.com/bookcard-io/bookcard-clients/internal/probe"
	"github.com/bookcard-io/bookcard-clients/internal/tester"
)

var (
	setValues    []string
	pathMappings []string
	testOnAdd    bool
	directTest   bool

	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List supported download client types",
		RunE:  runTypes,
	}

	fieldsCmd = &cobra.Command{
		Use:   "fields <type>",
		Short: "Show the configuration fields of a client type",
		Args:  cobra.ExactArgs(1),
		RunE:  runFields,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List configured download clients",
		RunE:  runList,
	}

	showCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show one download client in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addCmd = &cobra.Command{
		Use:   "add <type>",
		Short: "Add a download client",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
		Example: `  # Add a qBittorrent client
  bookcardctl add qbittorrent --set host=nas.local --set username=admin --set password=secret

  # Test the connection before saving
  bookcardctl add sabnzbd --set host=nas.local --set api_key=abc123 --test`,
	}

	editCmd = &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a download client",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
		Example: `  # Change the category; the stored password is kept unless a new
  # one is set
  bookcardctl edit 3 --set category=audiobooks`,
	}

	removeCmd = &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a download client",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}

	testCmd = &cobra.Command{
		Use:   "test <id | type>",
		Short: "Test a download client connection",
		Args:  cobra.ExactArgs(1),
		RunE:  runTest,
		Example: `  # Test a saved client using the server's stored credentials
  bookcardctl test 3

  # Test an unsaved draft without persisting it
  bookcardctl test qbittorrent --set host=nas.local --set password=secret

  # Probe the client directly from this machine instead of the server
  bookcardctl test qbittorrent --set host=nas.local --set password=secret --direct`,
	}

	itemsCmd = &cobra.Command{
		Use:   "items <id>",
		Short: "List active downloads on a client",
		Args:  cobra.ExactArgs(1),
		RunE:  runItems,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{typesCmd, fieldsCmd, listCmd, showCmd, addCmd, editCmd, removeCmd, testCmd, itemsCmd} {
		cmd.GroupID = "clients"
		rootCmd.AddCommand(cmd)
	}

	addCmd.Flags().StringArrayVar(&setValues, "set", nil, "set a field, key=value (repeatable)")
	addCmd.Flags().StringArrayVar(&pathMappings, "path-mapping", nil, "remote:local path mapping (repeatable)")
	addCmd.Flags().BoolVar(&testOnAdd, "test", false, "test the connection before saving")

	editCmd.Flags().StringArrayVar(&setValues, "set", nil, "set a field, key=value (repeatable)")
	editCmd.Flags().StringArrayVar(&pathMappings, "path-mapping", nil, "remote:local path mapping (repeatable)")

	testCmd.Flags().StringArrayVar(&setValues, "set", nil, "set a field, key=value (repeatable)")
	testCmd.Flags().BoolVar(&directTest, "direct", false, "probe the client from this machine instead of the server")
}

func runTypes(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, 17)
	for _, ct := range clienttype.All() {
		desc := clienttype.Get(ct)
		port := "-"
		if desc.DefaultPort > 0 {
			port = strconv.Itoa(desc.DefaultPort)
		}
		mappings := "yes"
		if !desc.SupportsPathMappings {
			mappings = "no"
		}
		rows = append(rows, []string{string(ct), string(desc.Protocol), port, mappings})
	}

	fmt.Println(renderTable(
		[]string{"TYPE", "PROTOCOL", "DEFAULT PORT", "PATH MAPPINGS"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	ct := clienttype.ClientType(args[0])
	if !clienttype.Supported(ct) {
		return fmt.Errorf("unknown client type %q, run bookcardctl types", args[0])
	}

	f := form.New(ct)
	rows := make([][]string, 0)
	for _, input := range form.BasicInputs(f) {
		rows = append(rows, fieldRow(input, "basic"))
	}
	for _, input := range form.AdvancedInputs(f) {
		rows = append(rows, fieldRow(input, "advanced"))
	}

	fmt.Println(renderTable(
		[]string{"KEY", "LABEL", "KIND", "SECTION", "REQUIRED"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func fieldRow(input form.Input, section string) []string {
	required := ""
	if input.Required {
		required = "yes"
	}
	return []string{string(input.Key), input.Label, string(input.Kind), section, required}
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	clients, err := client.ListDownloadClients(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list download clients")
		return err
	}

	rows := make([][]string, 0, len(clients))
	for _, dc := range clients {
		enabled := "yes"
		if !dc.Enabled {
			enabled = "no"
		}
		rows = append(rows, []string{
			strconv.FormatInt(dc.ID, 10),
			dc.Name,
			string(dc.ClientType),
			dc.Host,
			enabled,
			strconv.Itoa(dc.Priority),
		})
	}

	fmt.Println(renderTable(
		[]string{"ID", "NAME", "TYPE", "HOST", "ENABLED", "PRIORITY"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	dc, err := client.GetDownloadClient(cmd.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to fetch download client")
		return err
	}

	rows := [][]string{
		{"name", dc.Name},
		{"type", string(dc.ClientType)},
		{"host", dc.Host},
		{"port", strconv.Itoa(dc.Port)},
		{"use ssl", strconv.FormatBool(dc.UseSSL)},
		{"username", dc.Username},
		{"priority", strconv.Itoa(dc.Priority)},
		{"timeout", fmt.Sprintf("%ds", dc.TimeoutSeconds)},
		{"enabled", strconv.FormatBool(dc.Enabled)},
	}
	if dc.Category != "" {
		rows = append(rows, []string{"category", dc.Category})
	}
	if dc.DownloadPath != "" {
		rows = append(rows, []string{"download path", dc.DownloadPath})
	}
	keys := make([]string, 0, len(dc.AdditionalSettings))
	for key := range dc.AdditionalSettings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		rows = append(rows, []string{key, fmt.Sprintf("%v", dc.AdditionalSettings[key])})
	}

	fmt.Println(renderTable(
		[]string{"FIELD", "VALUE"},
		rows,
		[]columnAlignment{alignLeft, alignLeft},
	))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ct := clienttype.ClientType(args[0])
	if !clienttype.Supported(ct) {
		return fmt.Errorf("unknown client type %q, run bookcardctl types", args[0])
	}

	f := form.New(ct)
	if err := applyFlags(f); err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if testOnAdd {
		result := tester.New(client).Run(cmd.Context(), f)
		if !result.Success {
			log.Error().Str("message", result.Message).Msg("connection test failed, client not saved")
			return fmt.Errorf("connection test failed: %s", result.Message)
		}
		log.Info().Str("message", result.Message).Msg("connection test passed")
	}

	created, err := client.CreateDownloadClient(cmd.Context(), form.BuildPayload(f))
	if err != nil {
		log.Error().Err(err).Msg("failed to create download client")
		return err
	}

	log.Info().
		Int64("id", created.ID).
		Str("name", created.Name).
		Str("type", string(created.ClientType)).
		Msg("created download client")
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	dc, err := client.GetDownloadClient(cmd.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to fetch download client")
		return err
	}

	f := form.FromClient(dc)
	if err := applyFlags(f); err != nil {
		return err
	}

	updated, err := client.UpdateDownloadClient(cmd.Context(), id, form.BuildPayload(f))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update download client")
		return err
	}

	log.Info().
		Int64("id", updated.ID).
		Str("name", updated.Name).
		Msg("updated download client")
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteDownloadClient(cmd.Context(), id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to remove download client")
		return err
	}

	log.Info().Int64("id", id).Msg("removed download client")
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	var f *form.Form
	if id, parseErr := parseID(args[0]); parseErr == nil {
		dc, err := client.GetDownloadClient(cmd.Context(), id)
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to fetch download client")
			return err
		}
		f = form.FromClient(dc)
	} else {
		ct := clienttype.ClientType(args[0])
		if !clienttype.Supported(ct) {
			return fmt.Errorf("argument %q is neither a client id nor a client type", args[0])
		}
		f = form.New(ct)
		if err := applyFlags(f); err != nil {
			return err
		}
	}

	if directTest {
		return runDirectProbe(cmd, f)
	}

	result := tester.New(client).Run(cmd.Context(), f)
	if !result.Success {
		log.Error().Str("message", result.Message).Msg("connection test failed")
		return fmt.Errorf("connection test failed: %s", result.Message)
	}

	log.Info().Str("message", result.Message).Msg("connection test passed")
	return nil
}

func runDirectProbe(cmd *cobra.Command, f *form.Form) error {
	payload := form.BuildPayload(f)
	p, err := probe.ForPayload(payload)
	if err != nil {
		log.Error().Err(err).Str("type", string(payload.ClientType)).Msg("direct probe unavailable, drop --direct to test through the server")
		return err
	}

	if err := p.Test(cmd.Context()); err != nil {
		log.Error().Err(err).Msg("direct probe failed")
		return fmt.Errorf("connection test failed: %w", err)
	}

	log.Info().Str("type", string(payload.ClientType)).Msg("direct probe passed")
	return nil
}

func runItems(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.GetClientItems(cmd.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to fetch client items")
		return err
	}

	rows := make([][]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		size := "-"
		if item.SizeBytes > 0 {
			size = units.HumanSize(float64(item.SizeBytes))
		}
		eta := "-"
		if item.ETASeconds != nil {
			eta = formatETA(time.Duration(*item.ETASeconds) * time.Second)
		}
		rows = append(rows, []string{
			item.ClientItemID,
			item.Title,
			item.Status,
			fmt.Sprintf("%.0f%%", item.Progress*100),
			size,
			eta,
		})
	}

	fmt.Println(renderTable(
		[]string{"ITEM", "TITLE", "STATUS", "PROGRESS", "SIZE", "ETA"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))
	log.Info().Int("total", resp.Total).Msg("active downloads")
	return nil
}

// applyFlags feeds --set and --path-mapping values into the form.
func applyFlags(f *form.Form) error {
	for _, pair := range setValues {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected key=value", pair)
		}
		field := clienttype.Field(key)
		if _, known := clienttype.Lookup(field); !known {
			return fmt.Errorf("unknown field %q, run bookcardctl fields %s", key, f.ClientType)
		}
		f.Set(field, value)
	}

	if len(pathMappings) > 0 {
		mappings := make([]api.PathMapping, 0, len(pathMappings))
		for _, pair := range pathMappings {
			remote, local, ok := strings.Cut(pair, ":")
			if !ok {
				return fmt.Errorf("invalid --path-mapping %q, expected remote:local", pair)
			}
			mappings = append(mappings, api.PathMapping{Remote: remote, Local: local})
		}
		f.Set(clienttype.FieldPathMappings, mappings)
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client id %q", arg)
	}
	return id, nil
}

// formatETA converts a duration to a compact human-readable string
func formatETA(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
