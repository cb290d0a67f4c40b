package state

import (
	"context"
	"os"

	"github.com/totorewa/roro-chat-api/config"
	"github.com/totorewa/roro-chat-api/db"
	"github.com/totorewa/roro-chat-api/games/d20blackjack"
	"github.com/totorewa/roro-chat-api/leaderboard"
	"github.com/totorewa/roro-chat-api/sourceverify"
	"github.com/totorewa/roro-chat-api/usercfg"

	"github.com/go-playground/validator/v10"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	Logger    *zap.SugaredLogger
	Context   = context.Background()
	Validator = validator.New()

	Config *config.Config

	Mcsr        *leaderboard.Client
	Leaderboard *leaderboard.CommandHandler
	Players     *db.Repository
	Blackjack   *d20blackjack.CommandHandler
	Verifier    *sourceverify.NightbotVerifier
	Suffixes    *usercfg.Suffixes
	Channels    *usercfg.Channels
)

func Setup() {
	Logger = snippets.CreateZap().Sugar()

	genconfig.GenConfig(config.Config{})

	cfg, err := os.ReadFile("config.yaml")

	if err != nil {
		panic(err)
	}

	err = yaml.Unmarshal(cfg, &Config)

	if err != nil {
		panic(err)
	}

	err = Validator.Struct(Config)

	if err != nil {
		panic("configError: " + err.Error())
	}

	Mcsr = leaderboard.NewClient(Config.Mcsr)

	boards := leaderboard.NewBoardsCache(Mcsr, Config.Meta.Categories, Logger)

	Leaderboard = leaderboard.NewCommandHandler(Mcsr, boards, Config.Meta.DefaultBoard, Logger)

	Players = db.NewRepository(Config.Meta.DataDir)

	Blackjack = d20blackjack.NewCommandHandler(d20blackjack.NewGame(Players), Logger)

	Verifier = sourceverify.NewNightbotVerifier(Config.Meta.RealIPHeader, Logger)

	Suffixes = usercfg.NewSuffixes(Config.Meta.UsersFile)
	Channels = usercfg.NewChannels(Config.Meta.ChannelsFile, Config.Meta.DisableChannelCheck)

	Logger.Infof("DISABLE_CHANNEL_CHECK: %t", Config.Meta.DisableChannelCheck)
}
