package larcv

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

// channelMask holds the channels excluded from processing for the current
// run. It stays nil in no-DB mode, which masks nothing.
var channelMask map[int]bool

// ChannelStatusEntry mirrors one row of the ChannelStatus table. Status 0
// is a good channel; anything else (dead, noisy, disconnected) is masked.
type ChannelStatusEntry struct {
	Channel int `db:"Channel"`
	Status  int `db:"Status"`
}

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// LoadDatabase reads the channel status list valid for the run.
func LoadDatabase(dbConn *sqlx.DB, runNumber int) error {
	mask, err := getChannelMaskFromDB(dbConn, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting channel status from database: %w", err)
		logger.Error(errMessage.Error())
		return errMessage
	}
	channelMask = mask
	return nil
}

func getChannelMaskFromDB(db *sqlx.DB, runNumber int) (map[int]bool, error) {
	query := "SELECT Channel, Status FROM ChannelStatus WHERE MinRun <= %d and MaxRun >= %d"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		logger.Info("Channel status read from DB", "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}

	mask := make(map[int]bool)
	for rows.Next() {
		result := ChannelStatusEntry{}
		if err := rows.StructScan(&result); err != nil {
			return nil, fmt.Errorf("error scanning DB row: %w", err)
		}
		if result.Status != 0 {
			mask[result.Channel] = true
		}
	}
	return mask, nil
}
