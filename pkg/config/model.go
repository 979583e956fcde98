package config

type (

	// Config конфигурация программы
	Config struct {

		// Описание логирования
		Log struct {

			// Путь к файлу лога
			Path string

			// Имя файла логирования
			Filename string `required:"true" default:"psinspect.log"`

			// Уровень логирования
			Level string `required:"true" default:"warning"`

			// Выводить лог только на консоль
			Console bool `default:"false"`
		}

		// Файл истории осмотров
		Sessions struct {

			// Путь к JSON-файлу с сессиями осмотров
			Filename string `required:"true" default:"inspections.json"`
		}

		// База данных списка осматривающих
		Db struct {

			// Тип базы данных (пока поддерживается только sqlite)
			Type string `default:"sqlite"`

			// Имя файла базы данных
			Filename string `required:"true" default:"inspectors.sqlite"`
		}

		// Справочник оборудования
		Catalog struct {

			// Необязательный YAML-файл с внешним справочником ОРУ. Если не задан
			// или отсутствует, используется встроенный справочник
			Filename string
		}

		// Выгрузка в CSV
		Export struct {

			// Директория, куда складываются файлы выгрузки
			Path string `default:"."`
		}

		// Уведомления интерфейса
		Notify struct {

			// Время показа уведомления в секундах
			TTL uint `default:"5"`
		}
	}
)
