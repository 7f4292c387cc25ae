// Command zmanim-cli is a thin presentation layer over zmanimlib: it
// resolves a location, parses a civil date, and prints Hebrew dates,
// zmanim, Daf Yomi references, or Tachanun status depending on the
// subcommand invoked.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jzman-dev/zmanim-engine/dafyomi"
	"github.com/jzman-dev/zmanim-engine/formatter"
	"github.com/jzman-dev/zmanim-engine/hebrewcalendar/timeutil/gdt"
	"github.com/jzman-dev/zmanim-engine/internal/config"
	"github.com/jzman-dev/zmanim-engine/tefila"
	"github.com/jzman-dev/zmanim-engine/zmanim"
	"github.com/jzman-dev/zmanim-engine/zmanimlib"
	"github.com/spf13/cobra"
)

var (
	flagName      string
	flagLatitude  string
	flagLongitude string
	flagElevation string
	flagTimeZone  string
	flagInIsrael  string
	flagDate      string
	flagVerbose   bool
	flagHebrew    bool
	flagAll       bool
	flagZman      string

	location config.Location
)

func main() {
	root := &cobra.Command{
		Use:   "zmanim-cli",
		Short: "Hebrew calendar and zmanim lookups",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

			if err := config.LoadDotEnv(""); err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}

			resolved, err := config.Resolve(config.Flags{
				Name:      flagName,
				Latitude:  flagLatitude,
				Longitude: flagLongitude,
				Elevation: flagElevation,
				TimeZone:  flagTimeZone,
				InIsrael:  flagInIsrael,
			})
			if err != nil {
				return err
			}
			location = resolved

			slog.Debug("resolved location",
				"request_id", uuid.NewString(),
				"name", location.Name,
				"latitude", location.Latitude,
				"longitude", location.Longitude,
				"in_israel", location.InIsrael,
			)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagName, "name", "", "location name")
	root.PersistentFlags().StringVar(&flagLatitude, "lat", "", "latitude in decimal degrees")
	root.PersistentFlags().StringVar(&flagLongitude, "lon", "", "longitude in decimal degrees")
	root.PersistentFlags().StringVar(&flagElevation, "elevation", "", "elevation in meters")
	root.PersistentFlags().StringVar(&flagTimeZone, "tz", "", "IANA time zone name")
	root.PersistentFlags().StringVar(&flagInIsrael, "in-israel", "", "true/false, affects Yom Tov Sheni and the parsha cycle")
	root.PersistentFlags().StringVar(&flagDate, "date", "", "civil date YYYY-MM-DD (defaults to today)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flagHebrew, "hebrew", false, "render names in Hebrew script instead of transliterated English")

	root.AddCommand(hebrewDateCmd(), zmanimCmd(), dafyomiCmd(), tefilaCmd(), locationCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func civilDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", flagDate)
}

func newFormatter() formatter.Formatter {
	options := formatter.DefaultOptions()
	if flagHebrew {
		options.Language = formatter.Hebrew
	}
	return formatter.New(options)
}

func hebrewDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hebrew-date",
		Short: "Print the Hebrew date for a civil date",
		RunE: func(cmd *cobra.Command, args []string) error {
			civil, err := civilDate()
			if err != nil {
				return err
			}
			hebrewDate := zmanimlib.HebrewFromCivil(gdt.GYear(civil.Year()), civil.Month(), gdt.GDay(civil.Day()))
			hebrewDate.Calendar.SetInIsrael(location.InIsrael)
			fmt.Println(newFormatter().FormatHebrewDate(hebrewDate.Calendar.JewishDate()))
			return nil
		},
	}
}

func zmanimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zmanim",
		Short: "Print the standard zman set for a location and civil date",
		RunE: func(cmd *cobra.Command, args []string) error {
			civil, err := civilDate()
			if err != nil {
				return err
			}
			lib, err := zmanimlib.MakeLocation(location.Name, location.Latitude, location.Longitude, location.Elevation, utcOffsetMinutes(location.TimeZone, civil))
			if err != nil {
				return err
			}
			f := newFormatter()

			if flagZman != "" {
				zman, ok := zmanimlib.ZmanByName(lib, civil, flagZman)
				if !ok {
					return fmt.Errorf("no such zman %q", flagZman)
				}
				printCatalogZman(f, zman)
				return nil
			}

			if flagAll {
				for _, zman := range zmanimlib.AllZmanim(lib, civil) {
					printCatalogZman(f, zman)
				}
				return nil
			}

			z := zmanimlib.ZmanimFor(lib, civil)
			printZman(f, "Alos Hashachar", z.AlosHashachar)
			printZman(f, "Sunrise", z.Sunrise)
			printZman(f, "Sof Zman Shma", z.SofZmanShma)
			printZman(f, "Sof Zman Tfila", z.SofZmanTfila)
			printZman(f, "Chatzos", z.Chatzos)
			printZman(f, "Mincha Gedola", z.MinchaGedola)
			printZman(f, "Mincha Ketana", z.MinchaKetana)
			printZman(f, "Plag Hamincha", z.PlagHamincha)
			printZman(f, "Sunset", z.Sunset)
			printZman(f, "Tzais", z.Tzais)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagAll, "all", false, "print every named zman this engine exposes, not just the standard ten")
	cmd.Flags().StringVar(&flagZman, "zman", "", "print a single named zman by its catalog label (see --all for the full list of labels)")
	return cmd
}

func printZman(f formatter.Formatter, label string, entry zmanimlib.ZmanEntry) {
	if !entry.Ok {
		fmt.Printf("%s: n/a\n", label)
		return
	}
	fmt.Println(f.FormatZman(label, entry.Time))
}

// printCatalogZman prints one zmanim.Zman from the Catalog/ZmanByName
// surface: a duration zman prints its length, an undefined zman prints
// n/a, anything else formats as a civil instant.
func printCatalogZman(f formatter.Formatter, zman zmanim.Zman) {
	if !zman.Ok {
		fmt.Printf("%s: n/a\n", zman.Label)
		return
	}
	if zman.Classification == zmanim.ZmanDuration {
		fmt.Printf("%s: %s\n", zman.Label, time.Duration(zman.Duration)*time.Millisecond)
		return
	}
	fmt.Println(f.FormatZman(zman.Label, zman.Instant))
}

func utcOffsetMinutes(tz *time.Location, at time.Time) int {
	_, offsetSeconds := at.In(tz).Zone()
	return offsetSeconds / 60
}

func dafyomiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dafyomi",
		Short: "Print the Bavli and Yerushalmi daf for a civil date",
		RunE: func(cmd *cobra.Command, args []string) error {
			civil, err := civilDate()
			if err != nil {
				return err
			}
			f := newFormatter()
			if bavli, err := dafyomi.Bavli(civil); err == nil {
				fmt.Println("Bavli:", f.FormatBavliDaf(bavli))
			} else {
				fmt.Println("Bavli:", err)
			}
			if yerushalmi, err := dafyomi.Yerushalmi(civil); err == nil {
				if name := f.FormatYerushalmiDaf(yerushalmi); name != "" {
					fmt.Println("Yerushalmi:", name)
				} else {
					fmt.Println("Yerushalmi: no daf today")
				}
			} else {
				fmt.Println("Yerushalmi:", err)
			}
			return nil
		},
	}
}

func tefilaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tefila",
		Short: "Report whether Tachanun is said today",
		RunE: func(cmd *cobra.Command, args []string) error {
			civil, err := civilDate()
			if err != nil {
				return err
			}
			hebrewDate := zmanimlib.HebrewFromCivil(gdt.GYear(civil.Year()), civil.Month(), gdt.GDay(civil.Day()))
			hebrewDate.Calendar.SetInIsrael(location.InIsrael)
			options := tefila.DefaultOptions()
			fmt.Println("Shacharis:", tefila.IsTachanunRecitedShacharis(hebrewDate.Calendar, options))
			fmt.Println("Mincha:", tefila.IsTachanunRecitedMincha(hebrewDate.Calendar, options))
			return nil
		},
	}
}

func locationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location",
		Short: "Print the resolved location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s (%.4f, %.4f), elevation %.1fm, in_israel=%v\n",
				location.Name, location.Latitude, location.Longitude, location.Elevation, location.InIsrael)
			return nil
		},
	}
}
