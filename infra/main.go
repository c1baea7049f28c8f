package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/planvest/admin-backend/infra/cloudrun"
	"github.com/planvest/admin-backend/infra/docker"
	"github.com/planvest/admin-backend/infra/firestore"
	"github.com/planvest/admin-backend/infra/identity"
	"github.com/planvest/admin-backend/infra/provider"
	"github.com/planvest/admin-backend/infra/storage"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable identity service to allow using firebase
		_, err = identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// bucket for plan logo uploads
		logoBucket, err := storage.SetupLogoBucket(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, logoBucket, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
