package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/edamsoft/xconnect/pkgs/clients/twitterclient"
	"github.com/edamsoft/xconnect/pkgs/config"
	"github.com/edamsoft/xconnect/pkgs/database"
	"github.com/edamsoft/xconnect/pkgs/logger"
	"github.com/edamsoft/xconnect/pkgs/model"
	"github.com/edamsoft/xconnect/pkgs/relations"
	"github.com/edamsoft/xconnect/pkgs/repos/snapshotrepo"
	"github.com/gookit/color"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Main Application Entry Point
////////////////////////////////////////////////////////////////////////////////

func main() {
	println("xconnect - X relationship inspector")

	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var confArg bool
	var isDebug bool
	var userArg string
	var followersArg string
	var followingArg string
	var mutualsArg string
	var listsArg string
	var membersArg string

	flag.BoolVar(&confArg, "conf", false, "reconfigure")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.StringVar(&userArg, "user", "", "look up the profile of the given username")
	flag.StringVar(&followersArg, "followers", "", "fetch all followers of the given username")
	flag.StringVar(&followingArg, "following", "", "fetch all accounts the given username follows")
	flag.StringVar(&mutualsArg, "mutuals", "", "report mutual and one-way relationships of the given username")
	flag.StringVar(&listsArg, "lists", "", "fetch the public lists owned by the given username")
	flag.StringVar(&membersArg, "members", "", "fetch the members of the list with the given id")
	flag.Parse()

	// context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var homepath string
	if runtime.GOOS == "windows" {
		homepath = os.Getenv("appdata")
	} else {
		homepath = os.Getenv("HOME")
	}
	if homepath == "" {
		panic("failed to get home path from env")
	}

	appRootPath := filepath.Join(homepath, ".xconnect")
	confPath := filepath.Join(appRootPath, "conf.yaml")
	logPath := filepath.Join(appRootPath, "xconnect.log")
	if err := os.MkdirAll(appRootPath, 0755); err != nil {
		log.Fatalln("failed to make app dir", err)
	}

	////////////////////////////////////////////////////////////////////////////
	// Logger Initialization
	////////////////////////////////////////////////////////////////////////////
	logFile, err := os.OpenFile(logPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln("failed to create log file:", err)
	}
	defer logFile.Close()
	logger.InitLogger(isDebug, logFile)

	////////////////////////////////////////////////////////////////////////////
	// Configuration Loading
	////////////////////////////////////////////////////////////////////////////
	conf, err := config.ParseConfigFromFile(confPath)
	if os.IsNotExist(err) || confArg {
		conf, err = config.PromptConfig(confPath)
		if err != nil {
			log.Fatalln("config failure with", err)
		}
	}
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	if confArg {
		log.Println("config done")
		return
	}
	log.Infoln("config is loaded")

	////////////////////////////////////////////////////////////////////////////
	// API Client Setup
	////////////////////////////////////////////////////////////////////////////
	if conf.BearerToken == "" {
		log.Fatalln("no bearer token configured, run with -conf")
	}
	client := twitterclient.New(conf.BearerToken)
	if conf.CacheSize > 0 {
		client.SetCache(twitterclient.NewLruCache(conf.CacheSize))
	}
	setClientLogger(client, logFile)

	////////////////////////////////////////////////////////////////////////////
	// Database Connection
	////////////////////////////////////////////////////////////////////////////
	if conf.Database.Path == "" {
		conf.Database.Path = filepath.Join(appRootPath, "xconnect.db")
	}
	db, err := database.Connect(&conf.Database)
	if err != nil {
		log.Fatalln("failed to connect to database:", err)
	}
	defer db.Close()
	log.Infoln("database is connected")

	// listen signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer close(sigChan)
	defer signal.Stop(sigChan)
	go func() {
		sig, ok := <-sigChan
		if ok {
			log.Warnln("[listener] caught signal:", sig)
			cancel()
		}
	}()

	////////////////////////////////////////////////////////////////////////////
	// Main Job Execution
	////////////////////////////////////////////////////////////////////////////
	switch {
	case userArg != "":
		runUserLookup(ctx, client, userArg)
	case followersArg != "":
		runRelationList(ctx, client, db, followersArg, model.KIND_FOLLOWERS)
	case followingArg != "":
		runRelationList(ctx, client, db, followingArg, model.KIND_FOLLOWING)
	case mutualsArg != "":
		runMutuals(ctx, client, db, mutualsArg)
	case listsArg != "":
		runOwnedLists(ctx, client, listsArg)
	case membersArg != "":
		runListMembers(ctx, client, membersArg)
	default:
		flag.Usage()
	}
}

////////////////////////////////////////////////////////////////////////////////
// Commands
////////////////////////////////////////////////////////////////////////////////

func runUserLookup(ctx context.Context, client *twitterclient.Client, username string) {
	usr, err := client.GetUserByUsername(ctx, username)
	if err != nil {
		log.Fatalln("failed to look up user:", err)
	}

	fmt.Println(color.FgLightBlue.Render(usr.Title()), " id:", usr.Id)
	if usr.Description != "" {
		fmt.Println(usr.Description)
	}
	fmt.Printf("followers: %d  following: %d  protected: %v\n",
		usr.FollowersCount, usr.FollowingCount, usr.IsProtected)
}

func runRelationList(ctx context.Context, client *twitterclient.Client, db *sqlx.DB, username string, kind string) {
	userId, err := client.GetUserIdByUsername(ctx, username)
	if err != nil {
		log.Fatalln("failed to resolve username:", err)
	}

	var users []*twitterclient.User
	if kind == model.KIND_FOLLOWERS {
		users, err = client.GetAllFollowers(ctx, userId)
	} else {
		users, err = client.GetAllFollowing(ctx, userId)
	}
	if err != nil {
		log.Fatalln("failed to fetch relation list:", err)
	}

	for _, usr := range users {
		fmt.Println(usr.Title())
	}
	fmt.Println(color.FgGreen.Render(fmt.Sprintf("%d %s of %s", len(users), kind, username)))

	saveAndReportDiff(ctx, db, userId, kind, users)
}

func runMutuals(ctx context.Context, client *twitterclient.Client, db *sqlx.DB, username string) {
	userId, err := client.GetUserIdByUsername(ctx, username)
	if err != nil {
		log.Fatalln("failed to resolve username:", err)
	}

	service := relations.NewService(client)
	rel, err := service.GetRelationship(ctx, userId)
	if err != nil {
		log.Fatalln("failed to fetch relationships:", err)
	}

	mutuals := relations.Mutuals(rel.Followers, rel.Following)
	onlyFollowers := relations.OnlyFollowers(rel.Followers, rel.Following)
	onlyFollowing := relations.OnlyFollowing(rel.Followers, rel.Following)

	fmt.Println(color.FgLightBlue.Render("mutuals:"))
	for _, usr := range mutuals {
		fmt.Println("  " + usr.Title())
	}
	fmt.Println(color.FgYellow.Render("not followed back:"))
	for _, usr := range onlyFollowing {
		fmt.Println("  " + usr.Title())
	}
	fmt.Printf("%d mutuals, %d only-followers, %d only-following\n",
		len(mutuals), len(onlyFollowers), len(onlyFollowing))

	saveAndReportDiff(ctx, db, userId, model.KIND_MUTUALS, mutuals)
}

func runOwnedLists(ctx context.Context, client *twitterclient.Client, username string) {
	userId, err := client.GetUserIdByUsername(ctx, username)
	if err != nil {
		log.Fatalln("failed to resolve username:", err)
	}

	lists, err := client.GetOwnedLists(ctx, userId)
	if err != nil {
		log.Fatalln("failed to fetch owned lists:", err)
	}
	for _, lst := range lists {
		fmt.Printf("%s  members: %d\n", lst.Title(), lst.MemberCount)
	}
}

func runListMembers(ctx context.Context, client *twitterclient.Client, listId string) {
	lst, err := client.GetListById(ctx, listId)
	if err != nil {
		log.Fatalln("failed to fetch list:", err)
	}

	members, err := client.GetAllListMembers(ctx, listId)
	if err != nil {
		log.Fatalln("failed to fetch list members:", err)
	}

	fmt.Println(color.FgLightBlue.Render(lst.Title()))
	for _, usr := range members {
		fmt.Println("  " + usr.Title())
	}
	fmt.Printf("%d members\n", len(members))
}

////////////////////////////////////////////////////////////////////////////////
// Utility Functions
////////////////////////////////////////////////////////////////////////////////

// saveAndReportDiff stores the fetched member set and reports what changed
// since the previous snapshot of the same user and kind
func saveAndReportDiff(ctx context.Context, db *sqlx.DB, userId, kind string, users []*twitterclient.User) {
	repo := snapshotrepo.New()

	previous, err := repo.GetLatest(ctx, db, userId, kind)
	if err != nil {
		log.Errorln("failed to load previous snapshot:", err)
		return
	}

	ids := make([]string, 0, len(users))
	for _, usr := range users {
		ids = append(ids, usr.Id)
	}

	snap := &model.RelationSnapshot{UserId: userId, Kind: kind}
	snap.SetMemberIds(ids)
	if err := repo.Create(ctx, db, snap); err != nil {
		log.Errorln("failed to save snapshot:", err)
		return
	}

	if previous == nil {
		log.Infoln("first snapshot taken for", userId, kind)
		return
	}

	added, removed := relations.DiffIds(previous.MemberIdList(), ids)
	if len(added) == 0 && len(removed) == 0 {
		fmt.Println("no changes since", previous.CreatedAt.Format("2006-01-02 15:04"))
		return
	}
	if len(added) > 0 {
		fmt.Println(color.FgGreen.Render(fmt.Sprintf("+%d since %s", len(added), previous.CreatedAt.Format("2006-01-02 15:04"))), added)
	}
	if len(removed) > 0 {
		fmt.Println(color.FgRed.Render(fmt.Sprintf("-%d since %s", len(removed), previous.CreatedAt.Format("2006-01-02 15:04"))), removed)
	}
}

func setClientLogger(client *twitterclient.Client, out *os.File) {
	clientLogger := log.New()
	clientLogger.SetLevel(log.InfoLevel)
	clientLogger.SetOutput(out)
	clientLogger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})
	client.SetLogger(clientLogger)
}
