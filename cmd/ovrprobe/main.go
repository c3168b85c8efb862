// ovrprobe is a diagnostic tool for the Oculus runtime: it can check for
// the service and headset without initializing (detect) and dump what the
// runtime reports about an attached headset (info).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govr/libovr/pkg/ovr"
)

var (
	logger *zap.Logger

	verbose   bool
	timeoutMs int32
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ovrprobe",
		Short:         "Probe the Oculus runtime and attached hardware",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			if !verbose {
				cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
			}
			var err error
			logger, err = cfg.Build()
			return err
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Check for the Oculus service and an attached headset",
		Long: "Check for the Oculus service and an attached headset without\n" +
			"initializing the runtime. Exits 0 only when both are present.",
		RunE: runDetect,
	}
	detectCmd.Flags().Int32Var(&timeoutMs, "timeout", 0, "milliseconds to wait for the service (0 returns immediately)")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Initialize the runtime and dump headset, tracker and controller state",
		RunE:  runInfo,
	}

	rootCmd.AddCommand(detectCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	res := ovr.Detect(timeoutMs)
	logger.Info("detect",
		zap.Bool("service_running", res.IsOculusServiceRunning != ovr.False),
		zap.Bool("hmd_connected", res.IsOculusHMDConnected != ovr.False),
	)
	if res.IsOculusServiceRunning == ovr.False {
		return fmt.Errorf("oculus service not running")
	}
	if res.IsOculusHMDConnected == ovr.False {
		return fmt.Errorf("no headset connected")
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	params := ovr.InitParams{
		Flags:                 ovr.InitRequestVersion,
		RequestedMinorVersion: ovr.MinorVersion,
	}
	if r := ovr.Initialize(&params); r.IsFailure() {
		return initError("initialize", r)
	}
	defer ovr.Shutdown()

	logger.Info("runtime", zap.String("version", ovr.GetVersionString()))

	sess, luid, r := ovr.Create()
	if r.IsFailure() {
		return initError("create session", r)
	}
	defer ovr.Destroy(sess)

	logger.Debug("session", zap.Binary("adapter_luid", luid.Reserved[:]))

	desc := ovr.GetHmdDesc(sess)
	logger.Info("headset",
		zap.Int32("type", int32(desc.Type)),
		zap.String("product", desc.ProductNameString()),
		zap.String("manufacturer", desc.ManufacturerString()),
		zap.String("serial", desc.SerialNumberString()),
		zap.Int16("firmware_major", desc.FirmwareMajor),
		zap.Int16("firmware_minor", desc.FirmwareMinor),
		zap.Int32("resolution_w", desc.Resolution.W),
		zap.Int32("resolution_h", desc.Resolution.H),
		zap.Float32("refresh_hz", desc.DisplayRefreshRate),
	)

	for i := uint32(0); i < ovr.GetTrackerCount(sess); i++ {
		td := ovr.GetTrackerDesc(sess, i)
		logger.Info("tracker",
			zap.Uint32("index", i),
			zap.Float32("hfov_rad", td.FrustumHFovInRadians),
			zap.Float32("vfov_rad", td.FrustumVFovInRadians),
			zap.Float32("near_m", td.FrustumNearZInMeters),
			zap.Float32("far_m", td.FrustumFarZInMeters),
		)
	}

	controllers := ovr.GetConnectedControllerTypes(sess)
	logger.Info("controllers",
		zap.Bool("left_touch", controllers&ovr.ControllerLTouch != 0),
		zap.Bool("right_touch", controllers&ovr.ControllerRTouch != 0),
		zap.Bool("remote", controllers&ovr.ControllerRemote != 0),
		zap.Bool("xbox", controllers&ovr.ControllerXBox != 0),
	)

	logger.Info("profile",
		zap.String("user", ovr.GetString(sess, ovr.KeyUser, "")),
		zap.Float32("player_height_m", ovr.GetFloat(sess, ovr.KeyPlayerHeight, ovr.DefaultPlayerHeight)),
		zap.Float32("eye_height_m", ovr.GetFloat(sess, ovr.KeyEyeHeight, ovr.DefaultEyeHeight)),
	)

	status, r := ovr.GetSessionStatus(sess)
	if r.IsFailure() {
		return initError("session status", r)
	}
	logger.Info("status",
		zap.Bool("visible", status.IsVisible != ovr.False),
		zap.Bool("hmd_present", status.HmdPresent != ovr.False),
		zap.Bool("hmd_mounted", status.HmdMounted != ovr.False),
	)
	return nil
}

// initError folds the runtime's last-error detail into a Go error.
func initError(op string, r ovr.Result) error {
	info := ovr.GetLastErrorInfo()
	if msg := info.String(); msg != "" {
		return fmt.Errorf("%s: %w (%s)", op, r.Err(), msg)
	}
	return fmt.Errorf("%s: %w", op, r.Err())
}
