//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatToolDoc = `Chatlog Admin Tool

Usage:
  chat_tool <chat_id>...
  chat_tool -i
  chat_tool -h
Options:
  -h            Show this screen.
  -i            Dump all chats and owners to STDOUT.`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(chatToolDoc)
		return
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "whatsapp"
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't connect to database: %s\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)
	col := client.Database(dbName).Collection("chats")

	switch os.Args[1] {
	case "-h":
		fmt.Println(chatToolDoc)
	case "-i":
		cur, err := col.Find(ctx, bson.M{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Query error: %s\n", err)
			os.Exit(1)
		}
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var c struct {
				ID      string `bson:"_id"`
				From    string `bson:"from"`
				To      string `bson:"to"`
				Message string `bson:"msg"`
				OwnerID string `bson:"owner_id"`
			}
			if err := cur.Decode(&c); err != nil {
				continue
			}
			fmt.Printf("%s,%s,%s,%s,%s\n", c.ID, c.OwnerID, c.From, c.To, c.Message)
		}
	default:
		for _, arg := range os.Args[1:] {
			res, err := col.DeleteOne(ctx, bson.M{"_id": arg})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Delete error: %s\n", err)
			} else if res.DeletedCount == 0 {
				fmt.Fprintf(os.Stderr, "No such chat: %s\n", arg)
			} else {
				fmt.Printf("Deleted chat: %s\n", arg)
			}
		}
	}
}
