package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	inspectionCtlMod "github.com/kbelyakov/psinspect/controller/inspection"
	"github.com/kbelyakov/psinspect/model"
	exportSvcMod "github.com/kbelyakov/psinspect/service/export"
	"github.com/kbelyakov/psinspect/service/layout"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// Собранные сервисы программы. Заполняется в PersistentPreRunE корневой команды
var application *app

// rootCommand корневая команда программы
func rootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "psinspect",
		Short:         "Осмотр ПС: журнал периодических осмотров оборудования подстанции",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(configPath)
			if err != nil {
				return errors.Trace(err)
			}
			application = a
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "путь к файлу конфигурации")

	cmd.AddCommand(oruCommand())
	cmd.AddCommand(inspectCommand())
	cmd.AddCommand(sessionsCommand())
	cmd.AddCommand(exportCommand())
	cmd.AddCommand(inspectorsCommand())

	return cmd
}

// oruCommand список ОРУ из справочника
func oruCommand() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "oru",
		Short: "Список ОРУ из справочника",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, oru := range application.catalog.All() {
				fmt.Printf("%-12s %s (%d ед. оборудования)\n", oru.Voltage, oru.Name, len(oru.Equipments))
				if dump {
					_, _ = pp.Println(oru)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "вывести полное дерево справочника")

	return cmd
}

// inspectCommand ввод данных осмотра выбранного ОРУ
func inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <класс напряжения>",
		Short: "Провести осмотр ОРУ (черновик сохраняется после каждой единицы оборудования)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oru, err := application.catalog.ByVoltage(args[0])
			if err != nil {
				return errors.Trace(err)
			}
			return runInspect(*oru)
		},
	}
	return cmd
}

// Интерактивный ввод значений параметров с автосохранением черновика
func runInspect(oru model.Oru) error {
	values, comments, found := application.inspection.LatestDraft(oru)
	if found {
		fmt.Println("Восстановлен незавершённый черновик осмотра")
	} else {
		values = make(map[model.ParamKey]string)
		comments = make(map[string]string)
	}

	reader := bufio.NewScanner(os.Stdin)
	fmt.Printf("Осмотр: %s\n", oru.Name)

	for _, pair := range layout.Pairs(oru) {
		// Парное отображение для справки оператору
		if pair.Breaker != nil && pair.Transformer != nil {
			fmt.Printf("-- %s / %s --\n", pair.Breaker.Name, pair.Transformer.Name)
		}
	}

	for _, equipment := range oru.Equipments {
		fmt.Printf("\n== %s ==\n", equipment.Name)
		for _, param := range equipment.Parameters {
			key := model.ParamKey{EquipmentID: equipment.ID, Parameter: param.Name}
			prompt := param.Name
			if param.Unit != "" {
				prompt += ", " + param.Unit
			}
			if param.NormalValue != "" {
				prompt += " (норма: " + param.NormalValue + ")"
			}
			if current := values[key]; current != "" {
				prompt += " [" + current + "]"
			}
			fmt.Printf("%s: ", prompt)
			if !reader.Scan() {
				break
			}
			if input := strings.TrimSpace(reader.Text()); input != "" {
				values[key] = input
			}
		}
		fmt.Print("Комментарий: ")
		if reader.Scan() {
			if input := strings.TrimSpace(reader.Text()); input != "" {
				comments[equipment.ID] = input
			}
		}
		application.inspection.AutosaveDraft(oru, values, comments)
	}

	fmt.Print("\nЗавершить осмотр? (y/n): ")
	if !reader.Scan() || strings.ToLower(strings.TrimSpace(reader.Text())) != "y" {
		fmt.Println("Осмотр сохранён черновиком")
		return nil
	}

	session, err := application.inspection.FinalizeCurrent(oru, values, comments)
	if err != nil {
		if errors.Cause(err) == inspectionCtlMod.ErrNoInspectorSelected {
			application.notify.Push(model.NotifyError, "не выбран осматривающий: выберите командой inspectors select")
			printNotifications()
			return nil
		}
		return errors.Trace(err)
	}
	fmt.Printf("Осмотр завершён: %s от %s\n", session.ID, session.DateTime)
	return nil
}

// sessionsCommand работа с историей осмотров
func sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "История осмотров",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Список сессий (сначала новые)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := application.sessions.GetAll()
			// Порядок отображения - забота вызывающего: хранилище порядок не гарантирует
			sort.Slice(sessions, func(i, j int) bool {
				return sessions[i].Time().After(sessions[j].Time())
			})
			for _, s := range sessions {
				fmt.Printf("%s  %-16s %-12s %s\n", s.ID, s.DateTime, s.StatusLabel(), s.Oru.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Подробности сессии",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range application.sessions.GetAll() {
				if s.ID != args[0] {
					continue
				}
				fmt.Printf("%s, %s, %s\n", s.Oru.Name, s.DateTime, s.StatusLabel())
				for _, r := range s.Results {
					fmt.Printf("  %s\n", r.Equipment.Name)
					for _, p := range r.Equipment.Parameters {
						fmt.Printf("    %-40s %-10s (норма: %s)\n", p.Name, r.Value(p.Name), p.NormalValue)
					}
					if r.Comments != "" {
						fmt.Printf("    Комментарий: %s\n", r.Comments)
					}
				}
				return nil
			}
			return errors.Errorf("сессия %s не найдена", args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить сессию",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application.sessions.Delete(args[0])
			return nil
		},
	})

	return cmd
}

// exportCommand выгрузка в CSV
func exportCommand() *cobra.Command {
	var sessionID, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузка осмотров в CSV (UTF-8 BOM, разделитель \";\")",
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter := application.export
			if outDir != "" {
				// Разовая выгрузка в другую директорию, конфигурация не трогается
				e, err := exportSvcMod.NewCsv(application.ctx, &exportSvcMod.ConfigCsv{
					Log:        log,
					Inspectors: application.inspectors,
					Dir:        outDir,
				})
				if err != nil {
					return errors.Trace(err)
				}
				exporter = e
			}

			if sessionID != "" {
				for _, s := range application.sessions.GetAll() {
					if s.ID == sessionID {
						path, err := exporter.ExportSession(s)
						if err != nil {
							application.notify.Push(model.NotifyError, fmt.Sprintf("выгрузка не выполнена: %v", err))
							printNotifications()
							return errors.Trace(err)
						}
						fmt.Printf("Выгрузка: %s\n", path)
						return nil
					}
				}
				return errors.Errorf("сессия %s не найдена", sessionID)
			}

			path, err := exporter.ExportAll(application.sessions.GetAll())
			if err != nil {
				application.notify.Push(model.NotifyError, fmt.Sprintf("выгрузка не выполнена: %v", err))
				printNotifications()
				return errors.Trace(err)
			}
			fmt.Printf("Выгрузка: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "выгрузить только одну сессию с этим идентификатором")
	cmd.Flags().StringVar(&outDir, "out", "", "директория выгрузки вместо заданной в конфигурации")

	return cmd
}

// inspectorsCommand реестр осматривающих
func inspectorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspectors",
		Short: "Реестр осматривающих",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Список осматривающих",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := application.inspectors.GetAll()
			if err != nil {
				return errors.Trace(err)
			}
			current, err := application.inspectors.Current()
			if err != nil && !application.inspectors.IsNotFound(err) {
				return errors.Trace(err)
			}
			for _, i := range all {
				marker := " "
				if current != nil && current.ID == i.ID {
					marker = "*"
				}
				fmt.Printf("%s %s  %-25s %s\n", marker, i.ID, i.Name, i.Position)
			}
			return nil
		},
	})

	var name, position string
	add := &cobra.Command{
		Use:   "add",
		Short: "Добавить осматривающего",
		RunE: func(cmd *cobra.Command, args []string) error {
			inspector, err := application.inspectors.Add(model.Inspector{
				ID:       uuid.New().String(),
				Name:     name,
				Position: position,
			})
			if err != nil {
				if application.inspectors.IsDuplicate(err) {
					application.notify.Push(model.NotifyError, "осматривающий с таким именем уже существует")
					printNotifications()
					return nil
				}
				return errors.Trace(err)
			}
			fmt.Printf("Добавлен: %s %s\n", inspector.ID, inspector.Name)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "ФИО осматривающего")
	add.Flags().StringVar(&position, "position", "", "должность")
	_ = add.MarkFlagRequired("name")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "select <id>",
		Short: "Выбрать текущего осматривающего",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.inspectors.SetCurrent(args[0]); err != nil {
				return errors.Trace(err)
			}
			return nil
		},
	})

	return cmd
}

// Выводит на консоль активные уведомления
func printNotifications() {
	for _, n := range application.notify.Active() {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	}
}
