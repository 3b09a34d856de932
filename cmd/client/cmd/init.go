package cmd

import (
	"resepnusantara/cmd/client/cmd/cache"
	"resepnusantara/cmd/client/cmd/favorite"
	"resepnusantara/cmd/client/cmd/profile"
	"resepnusantara/cmd/client/cmd/recipe"
	"resepnusantara/cmd/client/cmd/review"
)

func init() {
	rootCmd.AddCommand(recipe.RecipeCmd)
	recipe.RecipeCmd.AddCommand(recipe.ListCmd)
	recipe.RecipeCmd.AddCommand(recipe.ShowCmd)

	rootCmd.AddCommand(favorite.FavoriteCmd)
	favorite.FavoriteCmd.AddCommand(favorite.ListCmd)
	favorite.FavoriteCmd.AddCommand(favorite.AddCmd)
	favorite.FavoriteCmd.AddCommand(favorite.RemoveCmd)
	favorite.FavoriteCmd.AddCommand(favorite.CheckCmd)

	rootCmd.AddCommand(review.ReviewCmd)
	review.ReviewCmd.AddCommand(review.ListCmd)
	review.ReviewCmd.AddCommand(review.AddCmd)
	review.ReviewCmd.AddCommand(review.SummaryCmd)

	rootCmd.AddCommand(profile.ProfileCmd)
	profile.ProfileCmd.AddCommand(profile.ShowCmd)
	profile.ProfileCmd.AddCommand(profile.SetCmd)
	profile.ProfileCmd.AddCommand(profile.AvatarCmd)
	profile.ProfileCmd.AddCommand(profile.ResetCmd)

	rootCmd.AddCommand(cache.CacheCmd)
	cache.CacheCmd.AddCommand(cache.ListCmd)
	cache.CacheCmd.AddCommand(cache.ShowCmd)
	cache.CacheCmd.AddCommand(cache.ClearCmd)
}
